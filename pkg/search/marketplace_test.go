package search

import (
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"₹1,299", 1299},
		{"$12.99", 12.99},
		{"1299.00", 1299},
		{"", 0},
		{"N/A", 0},
	}
	for _, tt := range tests {
		if got := parsePrice(tt.in); got != tt.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnabled(t *testing.T) {
	if NewClient("", "", "").Enabled() {
		t.Errorf("client without credentials must report disabled")
	}
	if !NewClient("key", "host.example.com", "IN").Enabled() {
		t.Errorf("client with credentials must report enabled")
	}
}
