package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"intent-chat-service/internal/chat"
	"intent-chat-service/internal/chat/session"
	"intent-chat-service/internal/chat/usecase"
	"intent-chat-service/internal/intent"
	"intent-chat-service/internal/model"
)

func newTestUseCase(t *testing.T, matcher *mockMatcher) chat.UseCase {
	t.Helper()
	store, err := session.NewStore(16, &mockLogger{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return usecase.New(&mockLogger{}, matcher, store)
}

func TestHandleMessage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionID: "sid-1"}

	t.Run("Empty Input Rejected Without Session Mutation", func(t *testing.T) {
		matcher := &mockMatcher{}
		uc := newTestUseCase(t, matcher)

		for _, text := range []string{"", "   ", "\t\n"} {
			_, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: text})
			if !errors.Is(err, chat.ErrEmptyInput) {
				t.Errorf("input %q: expected ErrEmptyInput, got %v", text, err)
			}
		}

		if matcher.calls != 0 {
			t.Errorf("matcher must not run on empty input")
		}
		hist, _ := uc.History(ctx, sc)
		if len(hist.Turns) != 0 {
			t.Errorf("history must stay empty, got %d turns", len(hist.Turns))
		}
	})

	t.Run("Normal Path Appends Exchange", func(t *testing.T) {
		matcher := &mockMatcher{}
		uc := newTestUseCase(t, matcher)

		out, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "hi there"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag != "greeting" || out.Response != "Hello!" || out.Confidence != 0.9 {
			t.Errorf("unexpected output: %+v", out)
		}

		hist, _ := uc.History(ctx, sc)
		if len(hist.Turns) != 2 {
			t.Fatalf("expected 2 turns, got %d", len(hist.Turns))
		}
		if hist.Turns[0].Role != chat.RoleUser || hist.Turns[0].Tag != "" {
			t.Errorf("user turn malformed: %+v", hist.Turns[0])
		}
		if hist.Turns[1].Role != chat.RoleBot || hist.Turns[1].Tag != "greeting" {
			t.Errorf("bot turn malformed: %+v", hist.Turns[1])
		}
	})

	t.Run("Follow Up Overrides Matcher", func(t *testing.T) {
		matcher := &mockMatcher{
			matchFunc: func(input intent.MatchInput) (intent.MatchOutput, error) {
				return intent.MatchOutput{Tag: chat.TagOrderStatus, Confidence: 0.92, Response: "What's your order number?"}, nil
			},
		}
		uc := newTestUseCase(t, matcher)

		if _, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "where is my order"}); err != nil {
			t.Fatalf("arming message: %v", err)
		}
		callsBefore := matcher.calls

		out, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "my order ABC123 please"})
		if err != nil {
			t.Fatalf("follow-up message: %v", err)
		}
		if matcher.calls != callsBefore {
			t.Errorf("matcher must be bypassed by the follow-up override")
		}
		if out.Tag != chat.TagOrderStatusFollowup {
			t.Errorf("expected %s, got %s", chat.TagOrderStatusFollowup, out.Tag)
		}
		if out.Confidence != usecase.FollowupConfidence {
			t.Errorf("expected confidence %v, got %v", usecase.FollowupConfidence, out.Confidence)
		}
		if !strings.Contains(out.Response, "ABC123") {
			t.Errorf("response must contain the captured id, got %q", out.Response)
		}

		hist, _ := uc.History(ctx, sc)
		if len(hist.Turns) != 4 {
			t.Fatalf("expected 4 turns after follow-up, got %d", len(hist.Turns))
		}
		if hist.Turns[3].Tag != chat.TagOrderStatusFollowup {
			t.Errorf("bot turn must carry the follow-up tag")
		}

		// One captured id disarms the rule: the next id-bearing message goes
		// back through the matcher.
		if _, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "XYZ789 too"}); err != nil {
			t.Fatalf("post-follow-up message: %v", err)
		}
		if matcher.calls != callsBefore+1 {
			t.Errorf("matcher must run again once the state left order_status")
		}
	})

	t.Run("Order Status Without Id Uses Matcher", func(t *testing.T) {
		matcher := &mockMatcher{
			matchFunc: func(input intent.MatchInput) (intent.MatchOutput, error) {
				return intent.MatchOutput{Tag: chat.TagOrderStatus, Confidence: 0.92, Response: "What's your order number?"}, nil
			},
		}
		uc := newTestUseCase(t, matcher)

		uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "where is my order"})
		out, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "i lost it"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matcher.calls != 2 {
			t.Errorf("matcher must run when no id is present")
		}
		if out.Tag != chat.TagOrderStatus {
			t.Errorf("unexpected tag %s", out.Tag)
		}
	})

	t.Run("Low Confidence Fallback Is Presentation Only", func(t *testing.T) {
		matcher := &mockMatcher{
			matchFunc: func(input intent.MatchInput) (intent.MatchOutput, error) {
				return intent.MatchOutput{Tag: chat.TagOrderStatus, Confidence: 0.30, Response: "What's your order number?"}, nil
			},
		}
		uc := newTestUseCase(t, matcher)

		out, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "umm orders?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag != chat.TagUnknown {
			t.Errorf("expected unknown tag, got %s", out.Tag)
		}
		if out.Response != usecase.FallbackResponse {
			t.Errorf("expected fallback response, got %q", out.Response)
		}
		if out.Confidence != 0.30 {
			t.Errorf("fallback must keep the raw confidence, got %v", out.Confidence)
		}

		// History records the true match, not the fallback.
		hist, _ := uc.History(ctx, sc)
		if hist.Turns[1].Tag != chat.TagOrderStatus {
			t.Errorf("history bot turn must carry the true tag, got %q", hist.Turns[1].Tag)
		}
		if hist.Turns[1].Text != "What's your order number?" {
			t.Errorf("history bot turn must carry the true response, got %q", hist.Turns[1].Text)
		}

		// The true tag armed the follow-up: an order id now short-circuits,
		// proving lastTag was order_status and not unknown.
		followUp, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "ABC123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if followUp.Tag != chat.TagOrderStatusFollowup {
			t.Errorf("expected follow-up after low-confidence order_status, got %s", followUp.Tag)
		}
	})

	t.Run("History Alternates Over N Exchanges", func(t *testing.T) {
		matcher := &mockMatcher{}
		uc := newTestUseCase(t, matcher)

		const n = 5
		for i := 0; i < n; i++ {
			if _, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "hello again"}); err != nil {
				t.Fatalf("exchange %d: %v", i, err)
			}
		}

		hist, _ := uc.History(ctx, sc)
		if len(hist.Turns) != 2*n {
			t.Fatalf("expected %d turns, got %d", 2*n, len(hist.Turns))
		}
		for i, turn := range hist.Turns {
			want := chat.RoleUser
			if i%2 == 1 {
				want = chat.RoleBot
			}
			if turn.Role != want {
				t.Errorf("turn %d: expected role %s, got %s", i, want, turn.Role)
			}
		}
	})

	t.Run("Matcher Error Propagates", func(t *testing.T) {
		matcher := &mockMatcher{
			matchFunc: func(input intent.MatchInput) (intent.MatchOutput, error) {
				return intent.MatchOutput{}, errors.New("embedding api down")
			},
		}
		uc := newTestUseCase(t, matcher)

		_, err := uc.HandleMessage(ctx, sc, chat.HandleMessageInput{Text: "hello"})
		if err == nil {
			t.Errorf("expected matcher error to propagate")
		}
		hist, _ := uc.History(ctx, sc)
		if len(hist.Turns) != 0 {
			t.Errorf("failed match must not mutate history")
		}
	})

	t.Run("Sessions Are Isolated", func(t *testing.T) {
		matcher := &mockMatcher{}
		uc := newTestUseCase(t, matcher)

		uc.HandleMessage(ctx, model.Scope{SessionID: "a"}, chat.HandleMessageInput{Text: "hi"})
		uc.HandleMessage(ctx, model.Scope{SessionID: "b"}, chat.HandleMessageInput{Text: "hi"})

		histA, _ := uc.History(ctx, model.Scope{SessionID: "a"})
		if len(histA.Turns) != 2 {
			t.Errorf("session a: expected 2 turns, got %d", len(histA.Turns))
		}
	})
}
