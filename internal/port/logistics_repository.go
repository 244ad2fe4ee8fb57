package port

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
)

// ShipmentRepository handles persistence of shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	List(ctx context.Context, f ListFilter) ([]domain.Shipment, int, error)
	Update(ctx context.Context, s *domain.Shipment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus, changedBy uuid.UUID, note string) (*domain.Shipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductionBatchRepository handles persistence of production batches.
type ProductionBatchRepository interface {
	Create(ctx context.Context, b *domain.ProductionBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionBatch, error)
	List(ctx context.Context, f ListFilter) ([]domain.ProductionBatch, int, error)
	Update(ctx context.Context, b *domain.ProductionBatch) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, changedBy uuid.UUID, note string) (*domain.ProductionBatch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryRepository handles persistence of inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, f ListFilter) ([]domain.InventoryItem, int, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
