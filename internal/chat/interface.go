package chat

import (
	"context"

	"intent-chat-service/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage runs one dialogue step for the session in sc.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)

	// History returns the session's conversation turns in call order.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)
}
