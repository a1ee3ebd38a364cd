package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent Chat specifics
	Catalog   CatalogConfig
	Embedding EmbeddingConfig
	Chat      ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CatalogConfig locates the precomputed intent catalog artifact.
type CatalogConfig struct {
	Path string
}

// EmbeddingConfig selects and configures the embedding provider. Model is
// normally taken from the catalog artifact; setting it here overrides that.
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

type ChatConfig struct {
	MaxSessions     int
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Intent Chat specifics
	cfg.Catalog.Path = viper.GetString("catalog.path")
	if catalogPath := viper.GetString("catalog_path"); catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.APIKey = viper.GetString("embedding.api_key")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	if embeddingKey := viper.GetString("embedding_api_key"); embeddingKey != "" {
		cfg.Embedding.APIKey = embeddingKey
	}

	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	if cfg.Embedding.APIKey == "" {
		return nil, fmt.Errorf("embedding API key is required - set embedding.api_key in config.yaml or EMBEDDING_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("catalog.path", "data/catalog.json")
	viper.SetDefault("embedding.provider", "voyage")
	viper.SetDefault("chat.max_sessions", 1024)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
