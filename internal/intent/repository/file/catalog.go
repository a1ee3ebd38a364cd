package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"intent-chat-service/internal/intent"
	pkgLog "intent-chat-service/pkg/log"
)

// artifact is the on-disk JSON schema of the catalog:
// tags, an NxD embedding matrix (row i belongs to tags[i]), the response
// candidates per tag, and the embedding model the matrix was built with.
type artifact struct {
	Model      string              `json:"model"`
	Tags       []string            `json:"tags"`
	Embeddings [][]float32         `json:"embeddings"`
	Responses  map[string][]string `json:"responses"`
}

type implRepository struct {
	path string
	l    pkgLog.Logger
}

// New creates a file-backed catalog repository reading from path.
func New(path string, l pkgLog.Logger) *implRepository {
	return &implRepository{
		path: path,
		l:    l,
	}
}

// LoadCatalog reads and validates the catalog artifact. Any structural
// problem (missing file, bad JSON, dimension mismatch, duplicate tags) wraps
// intent.ErrCatalogLoad; an artifact with zero intents is intent.ErrEmptyCatalog.
func (r *implRepository) LoadCatalog(ctx context.Context) (intent.Catalog, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return intent.Catalog{}, fmt.Errorf("%w: %v", intent.ErrCatalogLoad, err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return intent.Catalog{}, fmt.Errorf("%w: invalid JSON: %v", intent.ErrCatalogLoad, err)
	}

	if len(art.Tags) == 0 {
		return intent.Catalog{}, intent.ErrEmptyCatalog
	}
	if len(art.Embeddings) != len(art.Tags) {
		return intent.Catalog{}, fmt.Errorf("%w: %d tags but %d embedding rows",
			intent.ErrCatalogLoad, len(art.Tags), len(art.Embeddings))
	}

	dimension := len(art.Embeddings[0])
	if dimension == 0 {
		return intent.Catalog{}, fmt.Errorf("%w: zero-dimension embeddings", intent.ErrCatalogLoad)
	}

	seen := make(map[string]struct{}, len(art.Tags))
	records := make([]intent.Record, 0, len(art.Tags))
	for i, tag := range art.Tags {
		if tag == "" {
			return intent.Catalog{}, fmt.Errorf("%w: empty tag at index %d", intent.ErrCatalogLoad, i)
		}
		if _, dup := seen[tag]; dup {
			return intent.Catalog{}, fmt.Errorf("%w: duplicate tag %q", intent.ErrCatalogLoad, tag)
		}
		seen[tag] = struct{}{}

		if len(art.Embeddings[i]) != dimension {
			return intent.Catalog{}, fmt.Errorf("%w: tag %q has dimension %d, expected %d",
				intent.ErrCatalogLoad, tag, len(art.Embeddings[i]), dimension)
		}

		records = append(records, intent.Record{
			Tag:       tag,
			Embedding: art.Embeddings[i],
			Responses: art.Responses[tag],
		})
	}

	r.l.Infof(ctx, "catalog repository: loaded %d intents (model=%s, dim=%d) from %s",
		len(records), art.Model, dimension, r.path)

	return intent.Catalog{
		Model:     art.Model,
		Dimension: dimension,
		Records:   records,
	}, nil
}
