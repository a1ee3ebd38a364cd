package usecase

import (
	"context"
	"fmt"
	"strings"

	"intent-chat-service/internal/chat"
	"intent-chat-service/internal/intent"
	"intent-chat-service/internal/model"
	"intent-chat-service/pkg/orderid"
)

// HandleMessage runs one dialogue step: follow-up override first, then the
// matcher, then the low-confidence fallback. The session lock is held for
// the whole step so concurrent requests on one session cannot interleave
// history appends.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.HandleMessageOutput{}, chat.ErrEmptyInput
	}

	sess := uc.sessions.GetOrCreate(sc.SessionID)
	sess.Lock()
	defer sess.Unlock()

	// 1. Follow-up override: an armed order_status state plus an order id in
	// the message bypasses the matcher entirely.
	if sess.State() == chat.StateOrderStatus {
		if id, ok := orderid.First(text); ok {
			reply := fmt.Sprintf(FollowupResponseTemplate, id)
			sess.Append(
				chat.Turn{Role: chat.RoleUser, Text: text},
				chat.Turn{Role: chat.RoleBot, Text: reply, Tag: chat.TagOrderStatusFollowup},
			)

			uc.l.Infof(ctx, "uc.HandleMessage: session=%s follow-up captured order id %s", sc.SessionID, id)

			return chat.HandleMessageOutput{
				Tag:        chat.TagOrderStatusFollowup,
				Response:   reply,
				Confidence: FollowupConfidence,
			}, nil
		}
	}

	// 2. Normal path.
	result, err := uc.matcher.Match(ctx, intent.MatchInput{Text: text})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleMessage Match: %v", err)
		return chat.HandleMessageOutput{}, err
	}

	// History and lastTag always record the true match, even when the
	// caller is shown the fallback below. Follow-up logic keys off the real
	// tag, not the presented one.
	sess.Append(
		chat.Turn{Role: chat.RoleUser, Text: text},
		chat.Turn{Role: chat.RoleBot, Text: result.Response, Tag: result.Tag},
	)

	// 3. Low-confidence fallback: presentation-only override.
	if result.Confidence < ConfidenceThreshold {
		uc.l.Infof(ctx, "uc.HandleMessage: session=%s low confidence %.3f for tag %s, falling back",
			sc.SessionID, result.Confidence, result.Tag)

		return chat.HandleMessageOutput{
			Tag:        chat.TagUnknown,
			Response:   FallbackResponse,
			Confidence: result.Confidence,
		}, nil
	}

	return chat.HandleMessageOutput{
		Tag:        result.Tag,
		Response:   result.Response,
		Confidence: result.Confidence,
	}, nil
}
