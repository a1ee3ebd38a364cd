package repository

import (
	"context"

	"intent-chat-service/internal/intent"
)

// CatalogRepository loads the precomputed intent catalog artifact.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) (intent.Catalog, error)
}
