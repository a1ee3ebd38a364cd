// scripts/build-catalog/main.go
//
// Builds the intent catalog artifact consumed by the service at startup.
// Reads an intents definition file (tags, training patterns, responses),
// embeds every pattern, mean-pools the pattern vectors per intent, and
// writes the resulting catalog JSON.
//
// Usage:
//   EMBEDDING_API_KEY=... go run scripts/build-catalog/main.go <intents.json> <catalog.json>

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"intent-chat-service/config"
	"intent-chat-service/pkg/embedding"
	"intent-chat-service/pkg/log"
)

type intentDef struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

type intentsFile struct {
	Intents []intentDef `json:"intents"`
}

// catalogArtifact mirrors the on-disk schema read by the catalog repository.
type catalogArtifact struct {
	Model      string              `json:"model"`
	Tags       []string            `json:"tags"`
	Embeddings [][]float32         `json:"embeddings"`
	Responses  map[string][]string `json:"responses"`
}

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/build-catalog/main.go <intents.json> <catalog.json>")
		fmt.Println("Example: go run scripts/build-catalog/main.go data/intents.json data/catalog.json")
		os.Exit(1)
	}
	intentsPath := os.Args[1]
	catalogPath := os.Args[2]

	// Load config (embedding provider and API key)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	raw, err := os.ReadFile(intentsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read intents file: %v", err)
	}

	var defs intentsFile
	if err := json.Unmarshal(raw, &defs); err != nil {
		logger.Fatalf(ctx, "Failed to parse intents file: %v", err)
	}
	if len(defs.Intents) == 0 {
		logger.Fatal(ctx, "Intents file defines no intents")
	}

	embedder, err := embedding.New(embedding.Config{
		Provider: cfg.Embedding.Provider,
		APIKey:   cfg.Embedding.APIKey,
		Model:    cfg.Embedding.Model,
		BaseURL:  cfg.Embedding.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize embedding provider: %v", err)
	}

	logger.Infof(ctx, "Building catalog for %d intents with model %s...", len(defs.Intents), embedder.Model())

	artifact := catalogArtifact{
		Model:     embedder.Model(),
		Responses: make(map[string][]string, len(defs.Intents)),
	}

	for i, def := range defs.Intents {
		if def.Tag == "" {
			logger.Fatalf(ctx, "Intent %d has an empty tag", i)
		}
		if len(def.Patterns) == 0 {
			logger.Fatalf(ctx, "Intent %q has no training patterns", def.Tag)
		}

		vectors, err := embedder.Embed(ctx, def.Patterns)
		if err != nil {
			logger.Fatalf(ctx, "Failed to embed patterns for intent %q: %v", def.Tag, err)
		}
		if len(vectors) != len(def.Patterns) {
			logger.Fatalf(ctx, "Intent %q: got %d vectors for %d patterns", def.Tag, len(vectors), len(def.Patterns))
		}

		artifact.Tags = append(artifact.Tags, def.Tag)
		artifact.Embeddings = append(artifact.Embeddings, meanPool(vectors))
		artifact.Responses[def.Tag] = def.Responses

		logger.Infof(ctx, "Embedded intent %d/%d: %s (%d patterns)", i+1, len(defs.Intents), def.Tag, len(def.Patterns))
	}

	out, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to marshal catalog: %v", err)
	}
	if err := os.WriteFile(catalogPath, out, 0o644); err != nil {
		logger.Fatalf(ctx, "Failed to write catalog file: %v", err)
	}

	logger.Infof(ctx, "Catalog written to %s (%d intents, dimension %d)",
		catalogPath, len(artifact.Tags), len(artifact.Embeddings[0]))
}

// meanPool averages a set of equal-length vectors into one centroid.
func meanPool(vectors [][]float32) []float32 {
	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, v := range vectors {
		for i, x := range v {
			sum[i] += float64(x)
		}
	}

	out := make([]float32, dim)
	n := float64(len(vectors))
	for i := range sum {
		out[i] = float32(sum[i] / n)
	}
	return out
}
