package supplier

import (
	"fmt"
	"strings"
)

// BuildRecommendation renders a plain-text vendor comparison for the ranked
// matches: one line per vendor, the trade-offs between the leaders, a clear
// pick with reasoning and a suggested next step. Plain text only, no markdown,
// so it reads well inside a chat window.
func BuildRecommendation(productType string, quantity, timelineDays int, matches []Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No suitable vendors were found for %s. Consider widening the budget or relaxing the requirements.", productType)
	}

	top := matches
	if len(top) > 3 {
		top = top[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Vendor comparison for %d x %s", quantity, productType)
	if timelineDays > 0 {
		fmt.Fprintf(&b, " needed within %d days", timelineDays)
	}
	b.WriteString(":\n\n")

	for _, m := range top {
		fmt.Fprintf(&b, "%s - ₹%.0f/unit, delivery in %d days, rating %.1f", m.Name, m.Price, m.DeliveryDays, m.Rating)
		if m.Certified {
			b.WriteString(", certified")
		}
		b.WriteString("\n")
	}

	best := top[0]
	fmt.Fprintf(&b, "\nRecommended: %s.", best.Name)

	cheapest := top[0]
	fastest := top[0]
	for _, m := range top[1:] {
		if m.Price < cheapest.Price {
			cheapest = m
		}
		if m.DeliveryDays < fastest.DeliveryDays {
			fastest = m
		}
	}
	switch {
	case cheapest.Name != best.Name && fastest.Name != best.Name:
		fmt.Fprintf(&b, " %s is cheaper at ₹%.0f/unit and %s delivers faster in %d days, but %s offers the best overall balance of price, delivery and rating.",
			cheapest.Name, cheapest.Price, fastest.Name, fastest.DeliveryDays, best.Name)
	case cheapest.Name != best.Name:
		fmt.Fprintf(&b, " %s is cheaper at ₹%.0f/unit, but %s scores higher on delivery and rating.",
			cheapest.Name, cheapest.Price, best.Name)
	case fastest.Name != best.Name:
		fmt.Fprintf(&b, " %s delivers faster in %d days, but %s offers the better price and rating.",
			fastest.Name, fastest.DeliveryDays, best.Name)
	default:
		b.WriteString(" It leads on price, delivery time and rating among the matched vendors.")
	}

	fmt.Fprintf(&b, "\n\nSuggested next step: contact %s", best.Name)
	if best.Contact != "" {
		fmt.Fprintf(&b, " at %s", best.Contact)
	}
	b.WriteString(" to confirm availability and pricing.")

	return b.String()
}
