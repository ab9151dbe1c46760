package question

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Question is a single clarification prompt keyed for attribute storage.
type Question struct {
	Key      string `json:"key"`
	Question string `json:"question"`
}

// Source produces the ordered clarification questions for a product. The
// returned list is never empty.
type Source interface {
	Generate(ctx context.Context, productType string, quantity int) []Question
}

// FallbackQuestions is the fixed default list used whenever the external
// generator is unavailable or returns nothing.
func FallbackQuestions(productType string) []Question {
	return []Question{
		{Key: "specifications", Question: fmt.Sprintf("What specific requirements do you have for the %s?", productType)},
		{Key: "quality", Question: "What quality level do you need? (e.g., premium, standard, budget)"},
		{Key: "features", Question: "Any specific features or characteristics required?"},
		{Key: "usage", Question: "How will these be used? (e.g., office use, industrial, personal)"},
		{Key: "budget_range", Question: "What's your budget range per unit?"},
	}
}

// ServiceGenerator asks an external question-generation service first and
// falls back to the static list on any failure.
type ServiceGenerator struct {
	endpoint string
	client   *http.Client
}

func NewServiceGenerator(endpoint string) *ServiceGenerator {
	return &ServiceGenerator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type generateRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type generateResponse struct {
	Questions []Question `json:"questions"`
}

func (g *ServiceGenerator) Generate(ctx context.Context, productType string, quantity int) []Question {
	if g.endpoint == "" {
		return FallbackQuestions(productType)
	}

	payload, err := json.Marshal(generateRequest{Product: productType, Quantity: quantity})
	if err != nil {
		return FallbackQuestions(productType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return FallbackQuestions(productType)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return FallbackQuestions(productType)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return FallbackQuestions(productType)
	}

	var parsed generateResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return FallbackQuestions(productType)
	}
	if len(parsed.Questions) == 0 {
		return FallbackQuestions(productType)
	}

	return parsed.Questions
}

// StaticSource always answers with the fallback list. Used when no external
// service is configured and in tests.
type StaticSource struct{}

func (StaticSource) Generate(_ context.Context, productType string, _ int) []Question {
	return FallbackQuestions(productType)
}
