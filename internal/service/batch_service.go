package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateBatchInput is the DTO for creating a production batch.
type CreateBatchInput struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	LotNumber  string          `json:"lot_number" binding:"required"`
	QuantityLB decimal.Decimal `json:"quantity_lb"`
	StartedAt  string          `json:"started_at" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateBatchInput is the DTO for updating a production batch.
type UpdateBatchInput struct {
	LotNumber   *string          `json:"lot_number"`
	QuantityLB  *decimal.Decimal `json:"quantity_lb"`
	StartedAt   *string          `json:"started_at" binding:"omitempty,datetime=2006-01-02"`
	CompletedAt *string          `json:"completed_at" binding:"omitempty,datetime=2006-01-02"`
}

// ProductionBatchService defines the production batch contract.
type ProductionBatchService interface {
	Create(ctx context.Context, input CreateBatchInput) (*domain.ProductionBatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionBatch, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.ProductionBatch, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBatchInput) (*domain.ProductionBatch, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, changedBy uuid.UUID, note string) (*domain.ProductionBatch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type batchService struct {
	repo        port.ProductionBatchRepository
	productRepo port.ProductRepository
}

// NewProductionBatchService creates a new ProductionBatchService implementation.
func NewProductionBatchService(repo port.ProductionBatchRepository, productRepo port.ProductRepository) ProductionBatchService {
	return &batchService{repo: repo, productRepo: productRepo}
}

func (s *batchService) Create(ctx context.Context, input CreateBatchInput) (*domain.ProductionBatch, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	b := &domain.ProductionBatch{
		ProductID:  input.ProductID,
		LotNumber:  input.LotNumber,
		QuantityLB: input.QuantityLB,
		Status:     domain.BatchStatusPlanned,
		StartedAt:  parseDate(input.StartedAt),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *batchService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionBatch, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *batchService) List(ctx context.Context, f port.ListFilter) ([]domain.ProductionBatch, int, error) {
	return s.repo.List(ctx, f)
}

func (s *batchService) Update(ctx context.Context, id uuid.UUID, input UpdateBatchInput) (*domain.ProductionBatch, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LotNumber != nil {
		b.LotNumber = *input.LotNumber
	}
	if input.QuantityLB != nil {
		b.QuantityLB = *input.QuantityLB
	}
	if input.StartedAt != nil {
		b.StartedAt = parseDate(*input.StartedAt)
	}
	if input.CompletedAt != nil {
		b.CompletedAt = parseDate(*input.CompletedAt)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *batchService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, changedBy uuid.UUID, note string) (*domain.ProductionBatch, error) {
	if !domain.ValidBatchStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, changedBy, note)
}

func (s *batchService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
