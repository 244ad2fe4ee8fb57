package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateProductInput is the DTO for creating a catalog product.
type CreateProductInput struct {
	SKU            string          `json:"sku" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	CommercialName string          `json:"commercial_name"`
	Packaging      string          `json:"packaging"`
	PricePerLB     decimal.Decimal `json:"price_per_lb"`
}

// UpdateProductInput is the DTO for updating a catalog product.
type UpdateProductInput struct {
	SKU            *string          `json:"sku"`
	Name           *string          `json:"name"`
	CommercialName *string          `json:"commercial_name"`
	Packaging      *string          `json:"packaging"`
	PricePerLB     *decimal.Decimal `json:"price_per_lb"`
	IsActive       *bool            `json:"is_active"`
}

// ProductService defines the product catalog contract.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		SKU:            input.SKU,
		Name:           input.Name,
		CommercialName: input.CommercialName,
		Packaging:      input.Packaging,
		PricePerLB:     input.PricePerLB,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, f port.ListFilter) ([]domain.Product, int, error) {
	return s.repo.List(ctx, f)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != nil {
		p.SKU = *input.SKU
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.CommercialName != nil {
		p.CommercialName = *input.CommercialName
	}
	if input.Packaging != nil {
		p.Packaging = *input.Packaging
	}
	if input.PricePerLB != nil {
		p.PricePerLB = *input.PricePerLB
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
