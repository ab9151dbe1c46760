package contract

import (
	"context"

	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vendor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vendor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
