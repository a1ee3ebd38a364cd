package usecase

import (
	"context"

	"intent-chat-service/internal/chat"
	"intent-chat-service/internal/model"
)

// History returns the session's turns in call order.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	sess := uc.sessions.GetOrCreate(sc.SessionID)
	sess.Lock()
	defer sess.Unlock()

	return chat.HistoryOutput{Turns: sess.History()}, nil
}
