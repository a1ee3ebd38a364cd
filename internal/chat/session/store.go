package session

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "intent-chat-service/pkg/log"
)

// DefaultMaxSessions caps the number of live sessions. Individual histories
// are unbounded, so total memory is bounded by evicting whole idle sessions.
const DefaultMaxSessions = 1024

// Store is the process-scoped session registry, keyed by the opaque session
// identifier supplied per request. Sessions are created on first sight and
// only disappear through LRU eviction or process restart.
type Store struct {
	sessions *lru.Cache[string, *Session]
	l        pkgLog.Logger
}

// NewStore creates a session store holding at most maxSessions sessions.
func NewStore(maxSessions int, l pkgLog.Logger) (*Store, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	cache, err := lru.NewWithEvict(maxSessions, func(id string, _ *Session) {
		l.Infof(context.Background(), "session store: evicted idle session %s", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Store{
		sessions: cache,
		l:        l,
	}, nil
}

// GetOrCreate returns the session for id, creating it atomically on first
// contact so concurrent first requests share one session object.
func (st *Store) GetOrCreate(id string) *Session {
	sess := &Session{}
	if existing, ok, _ := st.sessions.PeekOrAdd(id, sess); ok {
		st.sessions.Get(id) // mark recently used
		return existing
	}
	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}
