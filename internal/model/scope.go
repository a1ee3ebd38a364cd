package model

// Scope carries the per-request identity resolved by the delivery layer.
// For this service that is just the opaque session identifier issued by the
// session middleware.
type Scope struct {
	SessionID string
}
