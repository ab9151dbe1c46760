package specification

import "gorm.io/gorm"

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByMaxPrice keeps vendors whose unit price fits a per-unit ceiling.
type ByMaxPrice struct {
	MaxPrice float64
}

func (s ByMaxPrice) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("price <= ?", s.MaxPrice)
}
