package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type statusHistoryRepo struct {
	db *sqlx.DB
}

// NewStatusHistoryRepo creates a PostgreSQL-backed StatusHistoryRepository.
func NewStatusHistoryRepo(db *sqlx.DB) port.StatusHistoryRepository {
	return &statusHistoryRepo{db: db}
}

func (r *statusHistoryRepo) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, f port.ListFilter) ([]domain.StatusHistory, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM status_history WHERE entity_type = $1 AND entity_id = $2",
		entityType, entityID)
	if err != nil {
		return nil, 0, fmt.Errorf("statusHistoryRepo.ListByEntity count: %w", err)
	}

	entries := []domain.StatusHistory{}
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM status_history WHERE entity_type = $1 AND entity_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		entityType, entityID, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("statusHistoryRepo.ListByEntity: %w", err)
	}
	return entries, total, nil
}

// insertStatusHistory appends a ledger row inside the caller's transaction.
// Every status transition goes through here; rows are never updated or
// deleted afterwards.
func insertStatusHistory(ctx context.Context, tx *sqlx.Tx, entityType string, entityID uuid.UUID, oldStatus *string, newStatus string, changedBy uuid.UUID, note string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO status_history (id, entity_type, entity_id, old_status, new_status, changed_by, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), entityType, entityID, oldStatus, newStatus, changedBy, note, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting status history: %w", err)
	}
	return nil
}
