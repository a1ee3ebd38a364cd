package intent

import "errors"

var (
	// ErrEmptyCatalog means the catalog holds no intent records. Matching
	// against it is a configuration error, fatal at startup.
	ErrEmptyCatalog = errors.New("intent catalog is empty")

	// ErrCatalogLoad means the catalog artifact is missing or malformed.
	ErrCatalogLoad = errors.New("failed to load intent catalog")

	// ErrDimensionMismatch means a query vector's dimension differs from the
	// catalog's.
	ErrDimensionMismatch = errors.New("query vector dimension does not match catalog")
)
