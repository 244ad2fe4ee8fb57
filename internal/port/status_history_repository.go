package port

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
)

// StatusHistoryRepository reads the append-only state-transition ledger.
// Writes happen inside entity repositories' status transactions.
type StatusHistoryRepository interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, f ListFilter) ([]domain.StatusHistory, int, error)
}
