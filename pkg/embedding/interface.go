package embedding

import (
	"context"
)

// IEmbedder defines the interface for text embedding providers.
// Implementations are safe for concurrent use.
type IEmbedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the embedding model identifier in use.
	Model() string
}
