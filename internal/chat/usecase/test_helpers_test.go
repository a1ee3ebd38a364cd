package usecase_test

import (
	"context"

	"intent-chat-service/internal/intent"
)

// Mock logger for testing
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

// mockMatcher implements intent.UseCase with a configurable match function
// and a call counter.
type mockMatcher struct {
	matchFunc func(input intent.MatchInput) (intent.MatchOutput, error)
	calls     int
}

func (m *mockMatcher) Match(ctx context.Context, input intent.MatchInput) (intent.MatchOutput, error) {
	m.calls++
	if m.matchFunc != nil {
		return m.matchFunc(input)
	}
	return intent.MatchOutput{Tag: "greeting", Confidence: 0.9, Response: "Hello!"}, nil
}
