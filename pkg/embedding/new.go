package embedding

import "fmt"

// New constructs the embedding provider selected by cfg. Construction failure
// wraps ErrUnavailable so callers can treat it as fatal at startup.
func New(cfg Config) (IEmbedder, error) {
	switch cfg.Provider {
	case ProviderVoyage, "":
		client, err := NewVoyageClient(cfg.APIKey)
		if err != nil {
			return nil, err
		}
		if cfg.Model != "" {
			client.WithModel(cfg.Model)
		}
		if cfg.BaseURL != "" {
			client.WithBaseURL(cfg.BaseURL)
		}
		return client, nil

	case ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrUnavailable, cfg.Provider)
	}
}
