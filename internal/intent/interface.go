package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Match finds the catalog intent closest to the given text.
	Match(ctx context.Context, input MatchInput) (MatchOutput, error)
}
