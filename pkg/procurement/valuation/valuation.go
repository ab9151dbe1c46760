package valuation

import "strings"

// Method is the procurement channel selected by estimated spend.
type Method struct {
	Name        string
	RequiresWOC bool
	Description string
}

// Spend thresholds separating the three procurement methods.
const (
	DirectPurchaseLimit = 50_000
	LimitedTenderLimit  = 500_000
)

// priceTier maps product-type keywords to a heuristic unit price.
type priceTier struct {
	keywords  []string
	unitPrice float64
}

var priceTiers = []priceTier{
	{keywords: []string{"laptop", "computer", "desktop", "server", "workstation"}, unitPrice: 60_000},
	{keywords: []string{"construction", "renovation", "civil", "building"}, unitPrice: 60_000},
	{keywords: []string{"chair", "desk", "table", "furniture", "sofa", "cabinet"}, unitPrice: 15_000},
	{keywords: []string{"service", "maintenance", "consulting", "cleaning", "printing"}, unitPrice: 20_000},
}

const defaultUnitPrice = 2_000

// UnitPrice returns the heuristic per-unit price for a product description.
func UnitPrice(productType string) float64 {
	lower := strings.ToLower(productType)
	for _, tier := range priceTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.unitPrice
			}
		}
	}
	return defaultUnitPrice
}

// EstimateValue computes the heuristic procurement value: unit price times
// quantity, capped at the declared budget when one is supplied and lower.
// Pure; callers validate quantity/budget before invoking.
func EstimateValue(productType string, quantity int, budget float64) float64 {
	if quantity < 1 {
		quantity = 1
	}
	value := UnitPrice(productType) * float64(quantity)
	if budget > 0 && budget < value {
		value = budget
	}
	return value
}

// SelectMethod maps an estimated value to a procurement method using the
// fixed thresholds. Values at or above the limited-tender limit require a
// waiver-of-competition justification.
func SelectMethod(estimatedValue float64) Method {
	switch {
	case estimatedValue < DirectPurchaseLimit:
		return Method{
			Name:        "Direct Purchase",
			RequiresWOC: false,
			Description: "Low-value procurement; purchase directly from a single supplier.",
		}
	case estimatedValue < LimitedTenderLimit:
		return Method{
			Name:        "Limited Tender",
			RequiresWOC: false,
			Description: "Mid-value procurement; invite quotations from a shortlist of suppliers.",
		}
	default:
		return Method{
			Name:        "Open Tender",
			RequiresWOC: true,
			Description: "High-value procurement; open competitive bidding with a waiver-of-competition justification on file.",
		}
	}
}
