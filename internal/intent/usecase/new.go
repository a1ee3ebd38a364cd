package usecase

import (
	"math/rand"
	"sync"
	"time"

	"intent-chat-service/internal/intent"
	"intent-chat-service/pkg/embedding"
	pkgLog "intent-chat-service/pkg/log"
)

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	catalog  intent.Catalog
	embedder embedding.IEmbedder

	// rng picks the response among a matched intent's candidates. It is
	// injected so tests can force a deterministic choice. *rand.Rand is not
	// safe for concurrent use, hence the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a new intent matcher over the given catalog. An empty catalog
// is a configuration error.
func New(l pkgLog.Logger, catalog intent.Catalog, embedder embedding.IEmbedder, rng *rand.Rand) (*implUseCase, error) {
	if len(catalog.Records) == 0 {
		return nil, intent.ErrEmptyCatalog
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &implUseCase{
		l:        l,
		catalog:  catalog,
		embedder: embedder,
		rng:      rng,
	}, nil
}
