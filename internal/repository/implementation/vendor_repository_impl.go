package implementation

import (
	"context"
	"errors"

	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/mapper"
	"procure-ai-be/internal/model"
	"procure-ai-be/internal/repository/contract"
	"procure-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VendorMapper
}

func NewVendorRepository(db *gorm.DB) contract.VendorRepository {
	return &VendorRepositoryImpl{
		db:     db,
		mapper: mapper.NewVendorMapper(),
	}
}

func (r *VendorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VendorRepositoryImpl) Create(ctx context.Context, vendor *entity.Vendor) error {
	m := r.mapper.ToModel(vendor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vendor = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendorRepositoryImpl) Update(ctx context.Context, vendor *entity.Vendor) error {
	m := r.mapper.ToModel(vendor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*vendor = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendorRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vendor{}, id).Error
}

func (r *VendorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vendor, error) {
	var m model.Vendor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VendorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vendor, error) {
	var models []*model.Vendor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Vendor, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *VendorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Vendor{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
