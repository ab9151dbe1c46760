package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Vendor struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Category     string         `gorm:"type:varchar(100);not null;index"`
	Items        datatypes.JSON `gorm:"type:jsonb"` // list of item names this vendor supplies
	Price        float64        `gorm:"not null"`
	Location     string         `gorm:"type:varchar(255)"`
	DeliveryDays int            `gorm:"not null;default:7"`
	Rating       float64        `gorm:"not null;default:0"`
	Certified    bool           `gorm:"not null;default:false"`
	Contact      string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Vendor) TableName() string {
	return "vendors"
}
