package supplier

import (
	"strings"
	"testing"
)

func TestBuildRecommendationComparesTopVendors(t *testing.T) {
	matches := []Match{
		{Vendor: Vendor{Name: "ErgoLux", Price: 18000, DeliveryDays: 6, Rating: 4.8, Certified: true, Contact: "contact@ergolux.in"}, Score: 109},
		{Vendor: Vendor{Name: "ChairCo", Price: 12000, DeliveryDays: 5, Rating: 4.5, Certified: true, Contact: "sales@chairco.in"}, Score: 105},
		{Vendor: Vendor{Name: "BudgetSeats", Price: 8000, DeliveryDays: 20, Rating: 3.2, Contact: "orders@budgetseats.in"}, Score: 62},
		{Vendor: Vendor{Name: "SeatWorks", Price: 15000, DeliveryDays: 10, Rating: 4.0}, Score: 40},
	}

	text := BuildRecommendation("office chairs", 50, 14, matches)

	if !strings.Contains(text, "50 x office chairs") || !strings.Contains(text, "within 14 days") {
		t.Errorf("request summary missing: %q", text)
	}
	for _, name := range []string{"ErgoLux", "ChairCo", "BudgetSeats"} {
		if !strings.Contains(text, name) {
			t.Errorf("top-3 vendor %s missing from comparison: %q", name, text)
		}
	}
	if strings.Contains(text, "SeatWorks") {
		t.Errorf("comparison should stop at three vendors: %q", text)
	}
	if !strings.Contains(text, "Recommended: ErgoLux.") {
		t.Errorf("expected the top-ranked vendor recommended: %q", text)
	}
	// BudgetSeats is cheapest and ChairCo fastest, so both trade-offs surface.
	if !strings.Contains(text, "BudgetSeats is cheaper") || !strings.Contains(text, "ChairCo delivers faster") {
		t.Errorf("trade-offs not highlighted: %q", text)
	}
	if !strings.Contains(text, "contact ErgoLux at contact@ergolux.in") {
		t.Errorf("next step missing: %q", text)
	}
	if strings.ContainsAny(text, "*#|") {
		t.Errorf("narrative must be plain text, got %q", text)
	}
}

func TestBuildRecommendationLeaderOnAllAxes(t *testing.T) {
	matches := []Match{
		{Vendor: Vendor{Name: "AllRound", Price: 5000, DeliveryDays: 3, Rating: 4.9}, Score: 90},
		{Vendor: Vendor{Name: "RunnerUp", Price: 9000, DeliveryDays: 9, Rating: 4.0}, Score: 70},
	}

	text := BuildRecommendation("printers", 2, 0, matches)

	if !strings.Contains(text, "leads on price, delivery time and rating") {
		t.Errorf("expected all-axes reasoning, got %q", text)
	}
	if strings.Contains(text, "within") {
		t.Errorf("no timeline supplied, summary should omit it: %q", text)
	}
}

func TestBuildRecommendationEmpty(t *testing.T) {
	text := BuildRecommendation("submarines", 1, 7, nil)

	if !strings.Contains(text, "No suitable vendors") {
		t.Errorf("expected no-match fallback, got %q", text)
	}
}
