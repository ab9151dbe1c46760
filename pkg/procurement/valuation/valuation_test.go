package valuation

import "testing"

func TestEstimateValue(t *testing.T) {
	tests := []struct {
		name        string
		productType string
		quantity    int
		budget      float64
		want        float64
	}{
		{"laptops are top tier", "gaming laptops", 2, 0, 120_000},
		{"furniture mid tier", "office chairs", 50, 0, 750_000},
		{"services mid tier", "printing services", 1, 0, 20_000},
		{"unknown product low default", "paper clips", 10, 0, 20_000},
		{"capped at lower budget", "office chairs", 50, 600_000, 600_000},
		{"budget above value leaves value", "office chairs", 50, 1_000_000, 750_000},
		{"zero quantity treated as one", "laptop", 0, 0, 60_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateValue(tt.productType, tt.quantity, tt.budget); got != tt.want {
				t.Errorf("EstimateValue(%q, %d, %v) = %v, want %v", tt.productType, tt.quantity, tt.budget, got, tt.want)
			}
		})
	}
}

func TestSelectMethod(t *testing.T) {
	tests := []struct {
		value       float64
		wantName    string
		wantWOC     bool
	}{
		{0, "Direct Purchase", false},
		{49_999, "Direct Purchase", false},
		{50_000, "Limited Tender", false},
		{499_999, "Limited Tender", false},
		{500_000, "Open Tender", true},
		{5_000_000, "Open Tender", true},
	}

	for _, tt := range tests {
		m := SelectMethod(tt.value)
		if m.Name != tt.wantName {
			t.Errorf("SelectMethod(%v).Name = %q, want %q", tt.value, m.Name, tt.wantName)
		}
		if m.RequiresWOC != tt.wantWOC {
			t.Errorf("SelectMethod(%v).RequiresWOC = %v, want %v", tt.value, m.RequiresWOC, tt.wantWOC)
		}
	}
}

// Increasing quantity or unit price must never pick a less strict method.
func TestMethodMonotonicInQuantity(t *testing.T) {
	strictness := map[string]int{"Direct Purchase": 0, "Limited Tender": 1, "Open Tender": 2}

	prev := -1
	for qty := 1; qty <= 200; qty += 7 {
		m := SelectMethod(EstimateValue("office chairs", qty, 0))
		s := strictness[m.Name]
		if s < prev {
			t.Fatalf("strictness dropped from %d to %d at quantity %d", prev, s, qty)
		}
		prev = s
	}
}
