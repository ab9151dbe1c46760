package service

import (
	"context"
	"errors"
	"strings"

	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/repository/specification"
	"procure-ai-be/internal/repository/unitofwork"
	"procure-ai-be/pkg/search"

	"github.com/google/uuid"
)

type ICatalogService interface {
	ListVendors(ctx context.Context, category string) ([]*entity.Vendor, error)
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error
	DeleteVendor(ctx context.Context, id uuid.UUID) error

	// Marketplace lookups proxy the external search API so clients never
	// hold the API key.
	SearchMarketplace(ctx context.Context, query string, limit int) ([]search.Product, error)
	GetSellerProfile(ctx context.Context, sellerID string) (*search.SellerProfile, error)
}

type catalogService struct {
	uowFactory  unitofwork.RepositoryFactory
	marketplace *search.Client
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, marketplace *search.Client) ICatalogService {
	return &catalogService{
		uowFactory:  uowFactory,
		marketplace: marketplace,
	}
}

func (s *catalogService) ListVendors(ctx context.Context, category string) ([]*entity.Vendor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "rating", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}
	return uow.VendorRepository().FindAll(ctx, specs...)
}

func (s *catalogService) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	if strings.TrimSpace(vendor.Name) == "" {
		return errors.New("vendor name is required")
	}
	if vendor.Price <= 0 {
		return errors.New("vendor price must be positive")
	}
	if vendor.Id == uuid.Nil {
		vendor.Id = uuid.New()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VendorRepository().Create(ctx, vendor)
}

func (s *catalogService) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.VendorRepository().FindOne(ctx, specification.ByID{ID: vendor.Id})
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("vendor not found")
	}
	return uow.VendorRepository().Update(ctx, vendor)
}

func (s *catalogService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VendorRepository().Delete(ctx, id)
}

func (s *catalogService) SearchMarketplace(ctx context.Context, query string, limit int) ([]search.Product, error) {
	if s.marketplace == nil || !s.marketplace.Enabled() {
		return nil, errors.New("marketplace search is not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is required")
	}
	return s.marketplace.SearchProducts(ctx, query, limit)
}

func (s *catalogService) GetSellerProfile(ctx context.Context, sellerID string) (*search.SellerProfile, error) {
	if s.marketplace == nil || !s.marketplace.Enabled() {
		return nil, errors.New("marketplace search is not configured")
	}
	if strings.TrimSpace(sellerID) == "" {
		return nil, errors.New("seller id is required")
	}
	return s.marketplace.GetSellerProfile(ctx, sellerID)
}
