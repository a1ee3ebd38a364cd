package embedding

import "errors"

// ErrUnavailable means the embedding provider could not be constructed.
// This is fatal at startup; the service must not serve requests without a
// working embedder.
var ErrUnavailable = errors.New("embedding provider unavailable")
