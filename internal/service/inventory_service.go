package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateInventoryInput is the DTO for creating an inventory item.
type CreateInventoryInput struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Warehouse  string          `json:"warehouse" binding:"required"`
	Location   string          `json:"location"`
	LotNumber  string          `json:"lot_number"`
	QuantityLB decimal.Decimal `json:"quantity_lb"`
}

// UpdateInventoryInput is the DTO for updating an inventory item.
type UpdateInventoryInput struct {
	Warehouse  *string          `json:"warehouse"`
	Location   *string          `json:"location"`
	LotNumber  *string          `json:"lot_number"`
	QuantityLB *decimal.Decimal `json:"quantity_lb"`
}

// InventoryService defines the per-product inventory contract.
type InventoryService interface {
	Create(ctx context.Context, input CreateInventoryInput) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.InventoryItem, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInventoryInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	repo        port.InventoryRepository
	productRepo port.ProductRepository
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(repo port.InventoryRepository, productRepo port.ProductRepository) InventoryService {
	return &inventoryService{repo: repo, productRepo: productRepo}
}

func (s *inventoryService) Create(ctx context.Context, input CreateInventoryInput) (*domain.InventoryItem, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{
		ProductID:  input.ProductID,
		Warehouse:  input.Warehouse,
		Location:   input.Location,
		LotNumber:  input.LotNumber,
		QuantityLB: input.QuantityLB,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *inventoryService) List(ctx context.Context, f port.ListFilter) ([]domain.InventoryItem, int, error) {
	return s.repo.List(ctx, f)
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, input UpdateInventoryInput) (*domain.InventoryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Warehouse != nil {
		item.Warehouse = *input.Warehouse
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.LotNumber != nil {
		item.LotNumber = *input.LotNumber
	}
	if input.QuantityLB != nil {
		item.QuantityLB = *input.QuantityLB
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
