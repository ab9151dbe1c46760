package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a supplier in the catalog used for matching.
type Vendor struct {
	Id           uuid.UUID
	Name         string
	Category     string
	Items        []string
	Price        float64
	Location     string
	DeliveryDays int
	Rating       float64
	Certified    bool
	Contact      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
