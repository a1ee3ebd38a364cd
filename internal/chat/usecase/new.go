package usecase

import (
	"intent-chat-service/internal/chat/session"
	"intent-chat-service/internal/intent"
	pkgLog "intent-chat-service/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	matcher  intent.UseCase
	sessions *session.Store
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, matcher intent.UseCase, sessions *session.Store) *implUseCase {
	return &implUseCase{
		l:        l,
		matcher:  matcher,
		sessions: sessions,
	}
}
