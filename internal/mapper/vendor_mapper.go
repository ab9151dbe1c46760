package mapper

import (
	"encoding/json"

	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/model"
	"procure-ai-be/pkg/procurement/supplier"

	"gorm.io/datatypes"
)

type VendorMapper struct{}

func NewVendorMapper() *VendorMapper {
	return &VendorMapper{}
}

func (m *VendorMapper) ToEntity(v *model.Vendor) *entity.Vendor {
	if v == nil {
		return nil
	}

	var items []string
	if len(v.Items) > 0 {
		_ = json.Unmarshal(v.Items, &items)
	}

	return &entity.Vendor{
		Id:           v.Id,
		Name:         v.Name,
		Category:     v.Category,
		Items:        items,
		Price:        v.Price,
		Location:     v.Location,
		DeliveryDays: v.DeliveryDays,
		Rating:       v.Rating,
		Certified:    v.Certified,
		Contact:      v.Contact,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (m *VendorMapper) ToModel(v *entity.Vendor) *model.Vendor {
	if v == nil {
		return nil
	}

	var items datatypes.JSON
	if len(v.Items) > 0 {
		if raw, err := json.Marshal(v.Items); err == nil {
			items = datatypes.JSON(raw)
		}
	}

	return &model.Vendor{
		Id:           v.Id,
		Name:         v.Name,
		Category:     v.Category,
		Items:        items,
		Price:        v.Price,
		Location:     v.Location,
		DeliveryDays: v.DeliveryDays,
		Rating:       v.Rating,
		Certified:    v.Certified,
		Contact:      v.Contact,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ToMatchable converts a catalog entity into the matcher's vendor shape.
func (m *VendorMapper) ToMatchable(v *entity.Vendor) supplier.Vendor {
	return supplier.Vendor{
		Name:         v.Name,
		Category:     v.Category,
		Items:        v.Items,
		Price:        v.Price,
		Location:     v.Location,
		DeliveryDays: v.DeliveryDays,
		Rating:       v.Rating,
		Certified:    v.Certified,
		Contact:      v.Contact,
	}
}
