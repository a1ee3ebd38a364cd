package session_test

import (
	"context"
	"sync"
	"testing"

	"intent-chat-service/internal/chat"
	"intent-chat-service/internal/chat/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func TestStore(t *testing.T) {
	t.Run("GetOrCreate Returns Same Session", func(t *testing.T) {
		st, err := session.NewStore(10, &mockLogger{})
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}

		a := st.GetOrCreate("sid-1")
		b := st.GetOrCreate("sid-1")
		if a != b {
			t.Errorf("expected the same session instance for one id")
		}
		if st.GetOrCreate("sid-2") == a {
			t.Errorf("distinct ids must get distinct sessions")
		}
	})

	t.Run("Concurrent First Contact Is Atomic", func(t *testing.T) {
		st, _ := session.NewStore(100, &mockLogger{})

		const workers = 32
		results := make([]*session.Session, workers)
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				results[i] = st.GetOrCreate("shared")
			}(i)
		}
		wg.Wait()

		for i := 1; i < workers; i++ {
			if results[i] != results[0] {
				t.Fatalf("worker %d got a different session instance", i)
			}
		}
		if st.Len() != 1 {
			t.Errorf("expected 1 live session, got %d", st.Len())
		}
	})

	t.Run("LRU Cap Evicts Oldest", func(t *testing.T) {
		st, _ := session.NewStore(2, &mockLogger{})

		first := st.GetOrCreate("a")
		st.GetOrCreate("b")
		st.GetOrCreate("c") // evicts "a"

		if st.Len() != 2 {
			t.Fatalf("expected 2 live sessions, got %d", st.Len())
		}
		if st.GetOrCreate("a") == first {
			t.Errorf("evicted session must be recreated fresh")
		}
	})

	t.Run("Session State Machine Buckets", func(t *testing.T) {
		st, _ := session.NewStore(10, &mockLogger{})
		sess := st.GetOrCreate("sid")

		sess.Lock()
		defer sess.Unlock()

		if sess.State() != chat.StateNone {
			t.Errorf("fresh session must be StateNone")
		}

		sess.Append(
			chat.Turn{Role: chat.RoleUser, Text: "where is my order?"},
			chat.Turn{Role: chat.RoleBot, Text: "what's the number?", Tag: chat.TagOrderStatus},
		)
		if sess.State() != chat.StateOrderStatus {
			t.Errorf("expected StateOrderStatus, got %v", sess.State())
		}
		if sess.LastTag() != chat.TagOrderStatus {
			t.Errorf("unexpected last tag %q", sess.LastTag())
		}

		sess.Append(
			chat.Turn{Role: chat.RoleUser, Text: "ABC123"},
			chat.Turn{Role: chat.RoleBot, Text: "found it", Tag: chat.TagOrderStatusFollowup},
		)
		if sess.State() != chat.StateOther {
			t.Errorf("follow-up tag must bucket as StateOther")
		}

		history := sess.History()
		if len(history) != 4 {
			t.Fatalf("expected 4 turns, got %d", len(history))
		}
		history[0].Text = "mutated"
		if sess.History()[0].Text == "mutated" {
			t.Errorf("History must return a copy")
		}
	})
}
