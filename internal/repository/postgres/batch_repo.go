package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type batchRepo struct {
	db *sqlx.DB
}

// NewProductionBatchRepo creates a PostgreSQL-backed ProductionBatchRepository.
func NewProductionBatchRepo(db *sqlx.DB) port.ProductionBatchRepository {
	return &batchRepo{db: db}
}

func (r *batchRepo) Create(ctx context.Context, b *domain.ProductionBatch) error {
	b.ID = uuid.New()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO production_batches (id, product_id, lot_number, quantity_lb, status,
		 started_at, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.ProductID, b.LotNumber, b.QuantityLB, b.Status,
		b.StartedAt, b.CompletedAt, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateLotNumber
		}
		return fmt.Errorf("batchRepo.Create: %w", err)
	}
	return nil
}

func (r *batchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductionBatch, error) {
	var b domain.ProductionBatch
	err := r.db.GetContext(ctx, &b, "SELECT * FROM production_batches WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("batchRepo.GetByID: %w", err)
	}
	return &b, nil
}

func (r *batchRepo) List(ctx context.Context, f port.ListFilter) ([]domain.ProductionBatch, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM production_batches
		 WHERE ($1 = '' OR lot_number ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)`, f.Search, f.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("batchRepo.List count: %w", err)
	}

	batches := []domain.ProductionBatch{}
	err = r.db.SelectContext(ctx, &batches,
		`SELECT * FROM production_batches
		 WHERE ($1 = '' OR lot_number ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		f.Search, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("batchRepo.List: %w", err)
	}
	return batches, total, nil
}

func (r *batchRepo) Update(ctx context.Context, b *domain.ProductionBatch) error {
	b.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE production_batches SET product_id = $1, lot_number = $2, quantity_lb = $3,
		 started_at = $4, completed_at = $5, updated_at = $6 WHERE id = $7`,
		b.ProductID, b.LotNumber, b.QuantityLB, b.StartedAt, b.CompletedAt, b.UpdatedAt, b.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateLotNumber
		}
		return fmt.Errorf("batchRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *batchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, changedBy uuid.UUID, note string) (*domain.ProductionBatch, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("batchRepo.UpdateStatus begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var b domain.ProductionBatch
	err = tx.GetContext(ctx, &b, "SELECT * FROM production_batches WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("batchRepo.UpdateStatus get: %w", err)
	}

	old := string(b.Status)
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE production_batches SET status = $1, updated_at = $2 WHERE id = $3", status, now, id); err != nil {
		return nil, fmt.Errorf("batchRepo.UpdateStatus: %w", err)
	}
	if err := insertStatusHistory(ctx, tx, domain.EntityProductionBatch, id, &old, string(status), changedBy, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("batchRepo.UpdateStatus commit: %w", err)
	}
	b.Status = status
	b.UpdatedAt = now
	return &b, nil
}

func (r *batchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM production_batches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("batchRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
