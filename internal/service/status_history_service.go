package service

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// Entity types whose transitions appear in the ledger.
var validHistoryEntities = map[string]bool{
	domain.EntityInvoice:         true,
	domain.EntityPayment:         true,
	domain.EntityShipment:        true,
	domain.EntityProductionBatch: true,
	domain.EntityWireTransfer:    true,
}

// StatusHistoryService reads the append-only transition ledger.
type StatusHistoryService interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, f port.ListFilter) ([]domain.StatusHistory, int, error)
}

type statusHistoryService struct {
	repo port.StatusHistoryRepository
}

// NewStatusHistoryService creates a new StatusHistoryService implementation.
func NewStatusHistoryService(repo port.StatusHistoryRepository) StatusHistoryService {
	return &statusHistoryService{repo: repo}
}

func (s *statusHistoryService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, f port.ListFilter) ([]domain.StatusHistory, int, error) {
	if !validHistoryEntities[entityType] {
		return nil, 0, domain.ErrNotFound
	}
	return s.repo.ListByEntity(ctx, entityType, entityID, f)
}
