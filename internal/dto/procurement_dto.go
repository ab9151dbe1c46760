package dto

import (
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/procurement/supplier"
	"procure-ai-be/pkg/search"
)

// RecommendRequest is the stateless valuation + supplier matching input.
type RecommendRequest struct {
	ProductType  string   `json:"product_type" validate:"required"`
	Quantity     int      `json:"quantity"`
	Budget       float64  `json:"budget" validate:"required,gt=0"`
	TimelineDays int      `json:"timeline_days"`
	Attributes   []string `json:"attributes,omitempty"`
}

type RecommendResponse struct {
	EstimatedValue float64          `json:"estimated_value"`
	Method         string           `json:"method"`
	RequiresWOC    bool             `json:"requires_woc"`
	Description    string           `json:"description"`
	Recommendation string           `json:"recommendation"`
	Suppliers      []supplier.Match `json:"suppliers"`
}

type GenerateQuestionsRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity"`
}

type GenerateQuestionsResponse struct {
	Questions []question.Question `json:"questions"`
}

type MarketplaceSearchResponse struct {
	Products []search.Product `json:"products"`
}

type SellerProfileResponse struct {
	Seller *search.SellerProfile `json:"seller"`
}
