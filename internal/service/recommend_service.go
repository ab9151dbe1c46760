package service

import (
	"context"
	"errors"
	"strings"

	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/mapper"
	"procure-ai-be/internal/repository/unitofwork"
	"procure-ai-be/pkg/procurement/question"
	"procure-ai-be/pkg/procurement/supplier"
	"procure-ai-be/pkg/procurement/valuation"
)

type IRecommendService interface {
	// Recommend runs valuation, method selection and supplier matching in
	// one shot, without any conversation state.
	Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
	GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
}

type recommendService struct {
	uowFactory   unitofwork.RepositoryFactory
	questions    question.Source
	vendorMapper *mapper.VendorMapper
}

func NewRecommendService(uowFactory unitofwork.RepositoryFactory, questions question.Source) IRecommendService {
	return &recommendService{
		uowFactory:   uowFactory,
		questions:    questions,
		vendorMapper: mapper.NewVendorMapper(),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	if strings.TrimSpace(req.ProductType) == "" {
		return nil, errors.New("product_type is required")
	}
	if req.Budget <= 0 {
		return nil, errors.New("budget must be positive")
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	value := valuation.EstimateValue(req.ProductType, quantity, req.Budget)
	method := valuation.SelectMethod(value)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendors, err := uow.VendorRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]supplier.Vendor, 0, len(vendors))
	for _, v := range vendors {
		catalog = append(catalog, s.vendorMapper.ToMatchable(v))
	}

	matches := supplier.FindSuppliers(supplier.Requirements{
		ProductType:  req.ProductType,
		Quantity:     quantity,
		Budget:       req.Budget,
		TimelineDays: req.TimelineDays,
		Attributes:   req.Attributes,
	}, catalog)

	return &dto.RecommendResponse{
		EstimatedValue: value,
		Method:         method.Name,
		RequiresWOC:    method.RequiresWOC,
		Description:    method.Description,
		Recommendation: supplier.BuildRecommendation(req.ProductType, quantity, req.TimelineDays, matches),
		Suppliers:      matches,
	}, nil
}

func (s *recommendService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	if strings.TrimSpace(req.Product) == "" {
		return nil, errors.New("product is required")
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return &dto.GenerateQuestionsResponse{
		Questions: s.questions.Generate(ctx, req.Product, quantity),
	}, nil
}
