package supplier

import (
	"sort"
	"strings"
)

// Vendor is a read-only candidate seller entry. The matcher only filters and
// scores it, never mutates it.
type Vendor struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Items        []string `json:"items"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	DeliveryDays int      `json:"delivery_days"`
	Rating       float64  `json:"rating"`
	Certified    bool     `json:"certified"`
	Contact      string   `json:"contact"`
}

// Requirements describes what the buyer is looking for.
type Requirements struct {
	ProductType  string
	Category     string
	Quantity     int
	Budget       float64  // 0 means unknown
	TimelineDays int      // 0 means unknown, treated as 7
	Attributes   []string // free-text clarification answers, in asked order
}

// Match is a scored vendor, best first after FindSuppliers.
type Match struct {
	Vendor
	Score float64 `json:"score"`
}

// FindSuppliers filters the catalog against the requirements and returns the
// candidates ranked by weighted score, best first. An empty result is a valid
// outcome the caller must present as "no match", not an error.
func FindSuppliers(req Requirements, catalog []Vendor) []Match {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	candidates := filterByOverlap(req, catalog, quantity)
	if len(candidates) == 0 {
		candidates = filterBySubstring(req, catalog, quantity)
	}

	matches := make([]Match, 0, len(candidates))
	for _, v := range candidates {
		matches = append(matches, Match{Vendor: v, Score: score(req, v, quantity)})
	}

	// Stable keeps catalog order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func withinBudget(req Requirements, v Vendor, quantity int) bool {
	if req.Budget <= 0 {
		return true
	}
	return v.Price*float64(quantity) <= req.Budget
}

func filterByOverlap(req Requirements, catalog []Vendor, quantity int) []Vendor {
	var out []Vendor
	for _, v := range catalog {
		if !withinBudget(req, v, quantity) {
			continue
		}
		if categoryMatches(req, v) || itemsOverlap(req, v) {
			out = append(out, v)
		}
	}
	return out
}

// filterBySubstring is the relaxed pass: any vendor whose name, category or
// item list mentions part of the product type, still budget-constrained.
func filterBySubstring(req Requirements, catalog []Vendor, quantity int) []Vendor {
	words := productWords(req.ProductType)
	if len(words) == 0 {
		return nil
	}

	var out []Vendor
	for _, v := range catalog {
		if !withinBudget(req, v, quantity) {
			continue
		}
		haystack := strings.ToLower(v.Name + " " + v.Category + " " + strings.Join(v.Items, " "))
		for _, w := range words {
			if strings.Contains(haystack, w) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

func categoryMatches(req Requirements, v Vendor) bool {
	if req.Category == "" {
		return false
	}
	return strings.Contains(strings.ToLower(v.Category), strings.ToLower(req.Category)) ||
		strings.Contains(strings.ToLower(req.Category), strings.ToLower(v.Category))
}

func itemsOverlap(req Requirements, v Vendor) bool {
	words := productWords(req.ProductType)
	for _, item := range v.Items {
		itemLower := strings.ToLower(item)
		for _, w := range words {
			if strings.Contains(itemLower, w) || strings.Contains(w, itemLower) {
				return true
			}
		}
	}
	return false
}

// productWords splits the product type into match keywords, dropping short
// stopword-ish tokens.
func productWords(productType string) []string {
	fields := strings.Fields(strings.ToLower(productType))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			words = append(words, f)
		}
	}
	return words
}

func score(req Requirements, v Vendor, quantity int) float64 {
	s := v.Rating * 10

	if v.Certified {
		s += 20
	}

	if req.Budget > 0 && v.Price*float64(quantity) <= req.Budget {
		s += 30
	}

	timeline := req.TimelineDays
	if timeline <= 0 {
		timeline = 7
	}
	if v.DeliveryDays <= timeline {
		s += 10
	}

	s += attributeOverlapBonus(req.Attributes, v)

	return s
}

// attributeOverlapBonus grants up to 15 points for captured attribute values
// that show up in the vendor's item keywords.
func attributeOverlapBonus(attributes []string, v Vendor) float64 {
	if len(attributes) == 0 {
		return 0
	}

	haystack := strings.ToLower(strings.Join(v.Items, " "))
	var bonus float64
	for _, answer := range attributes {
		for _, w := range productWords(answer) {
			if strings.Contains(haystack, w) {
				bonus += 5
				break
			}
		}
		if bonus >= 15 {
			return 15
		}
	}
	return bonus
}
