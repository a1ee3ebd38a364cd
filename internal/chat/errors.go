package chat

import "errors"

var (
	// ErrEmptyInput means the user message was empty or whitespace-only.
	// Rejected before any session state is touched.
	ErrEmptyInput = errors.New("message is empty")
)
