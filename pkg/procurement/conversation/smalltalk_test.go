package conversation

import (
	"strings"
	"testing"
)

func TestSmallTalk(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"hi", "procurement assistant"},
		{"Hello!", "procurement assistant"},
		{"good morning", "procurement assistant"},
		{"who are you?", "help you specify requirements"},
		{"what can you do", "clarifying questions"},
		{"thanks a lot", "You're welcome"},
		{"bye", "Goodbye"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := smallTalk(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("smallTalk(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestSmallTalkPassesThroughRequests(t *testing.T) {
	for _, input := range []string{
		"I need 50 office chairs for Mumbai",
		"20 laptops within 2 weeks",
		"printing services in Delhi",
	} {
		if got := smallTalk(input); got != "" {
			t.Errorf("smallTalk(%q) = %q, want no canned reply", input, got)
		}
	}
}
