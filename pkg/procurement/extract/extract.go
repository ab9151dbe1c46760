package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Entities is the structured guess pulled out of a free-text purchase request.
// All fields are best-effort: callers must treat ProductType as provisional
// until the user confirms it later in the flow.
type Entities struct {
	Quantity    int
	ProductType string
	Location    string
}

// TextExtractor turns free text into structured entities. It is an interface
// so the regex heuristic can be swapped for a real parser without touching
// the conversation engine.
type TextExtractor interface {
	Extract(text string) Entities
}

var (
	quantityRe = regexp.MustCompile(`(?i)(\d+)\s*(units|pcs|pieces|sets)?`)
	locationRe = regexp.MustCompile(`(?i)\b(?:for|in)\s+([a-zA-Z\s]+?)(?:\s+within|\s+in\s+\d+|$)`)

	leadInRe      = regexp.MustCompile(`(?i)^(i|we)?\s*(need|want|require|would\s+like)(\s+to\s+(buy|procure|purchase|order))?\s+`)
	leadingQtyRe  = regexp.MustCompile(`^\d+\s*`)
	locationCutRe = regexp.MustCompile(`(?i)\s*\b(for|in)\s+.*`)
	timelineCutRe = regexp.MustCompile(`(?i)\s*\bwithin\s+.*`)

	timelineRe = regexp.MustCompile(`(?i)(\d+)\s*(days?|weeks?|months?)`)
	amountRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// RegexExtractor is the default pattern-matching extractor. Extraction never
// fails; on non-match it degrades to quantity 1 / location "Unknown".
type RegexExtractor struct{}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

func (e *RegexExtractor) Extract(text string) Entities {
	result := Entities{
		Quantity: 1,
		Location: "Unknown",
	}

	if m := quantityRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			result.Quantity = n
		}
	}

	if m := locationRe.FindStringSubmatch(text); m != nil {
		result.Location = strings.TrimSpace(m[1])
	}

	productType := strings.TrimSpace(leadInRe.ReplaceAllString(text, ""))
	productType = strings.TrimSpace(leadingQtyRe.ReplaceAllString(productType, ""))
	productType = strings.TrimSpace(locationCutRe.ReplaceAllString(productType, ""))
	productType = strings.TrimSpace(timelineCutRe.ReplaceAllString(productType, ""))
	result.ProductType = productType

	return result
}

// ParseTimelineDays reads a day/week/month duration out of free text,
// defaulting to 30 days when nothing parses.
func ParseTimelineDays(text string) int {
	m := timelineRe.FindStringSubmatch(text)
	if m == nil {
		return 30
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 30
	}
	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "day"):
		return n
	case strings.HasPrefix(unit, "week"):
		return n * 7
	default:
		return n * 30
	}
}

// ParseAmount reads the first numeric amount from text, tolerating currency
// symbols and thousands separators ("₹50,000" -> 50000). Returns ok=false
// when no number is present.
func ParseAmount(text string) (float64, bool) {
	cleaned := strings.ReplaceAll(text, ",", "")
	m := amountRe.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
