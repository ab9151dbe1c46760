package extract

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantQty     int
		wantProduct string
		wantLoc     string
	}{
		{
			name:        "quantity product and location",
			text:        "50 office chairs for Mumbai",
			wantQty:     50,
			wantProduct: "office chairs",
			wantLoc:     "Mumbai",
		},
		{
			name:        "conversational lead-in stripped",
			text:        "I need 50 office chairs for Mumbai",
			wantQty:     50,
			wantProduct: "office chairs",
			wantLoc:     "Mumbai",
		},
		{
			name:        "no quantity defaults to 1",
			text:        "office supplies",
			wantQty:     1,
			wantProduct: "office supplies",
			wantLoc:     "Unknown",
		},
		{
			name:        "quantity with unit word",
			text:        "100 pcs printers",
			wantQty:     100,
			wantProduct: "pcs printers",
			wantLoc:     "Unknown",
		},
		{
			name:        "embedded in inside a word is not a location",
			text:        "dolphin statues",
			wantQty:     1,
			wantProduct: "dolphin statues",
			wantLoc:     "Unknown",
		},
		{
			name:        "location via in",
			text:        "printing services in Delhi",
			wantQty:     1,
			wantProduct: "printing services",
			wantLoc:     "Delhi",
		},
		{
			name:        "timeline clause stripped",
			text:        "20 laptops within 2 weeks",
			wantQty:     20,
			wantProduct: "laptops",
			wantLoc:     "Unknown",
		},
		{
			name:        "location followed by timeline",
			text:        "10 desks for Pune within 7 days",
			wantQty:     10,
			wantProduct: "desks",
			wantLoc:     "Pune",
		},
	}

	ex := NewRegexExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if got.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", got.Quantity, tt.wantQty)
			}
			if got.ProductType != tt.wantProduct {
				t.Errorf("ProductType = %q, want %q", got.ProductType, tt.wantProduct)
			}
			if got.Location != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got.Location, tt.wantLoc)
			}
		})
	}
}

func TestParseTimelineDays(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"within 7 days", 7},
		{"within 1 day", 1},
		{"2 weeks", 14},
		{"1 month", 30},
		{"3 months", 90},
		{"as soon as possible", 30},
		{"", 30},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseTimelineDays(tt.text); got != tt.want {
				t.Errorf("ParseTimelineDays(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOk bool
	}{
		{"1,000,000", 1000000, true},
		{"around 50000 total", 50000, true},
		{"₹50,000 per unit", 50000, true},
		{"750.50", 750.50, true},
		{"no idea yet", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseAmount(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
