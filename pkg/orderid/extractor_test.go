package orderid_test

import (
	"testing"

	"intent-chat-service/pkg/orderid"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"Alphanumeric ID", "my order ABC123 please", "ABC123", true},
		{"Hyphenated ID", "it is TRK-9981, thanks", "TRK-9981", true},
		{"Digits Only", "it's 123456", "123456", true},
		{"Leftmost Wins", "ids AB111 and CD222", "AB111", true},
		{"Too Short", "code AB12", "", false},
		{"Plain Words Skipped", "please check order status", "", false},
		{"No Candidates", "where is it?", "", false},
		{"Empty Input", "", "", false},
		{"Punctuation Bounded", "order: XJ-55A-9, thanks", "XJ-55A-9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := orderid.First(tt.text)
			if found != tt.found {
				t.Fatalf("First(%q) found=%v, want %v", tt.text, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("First(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
