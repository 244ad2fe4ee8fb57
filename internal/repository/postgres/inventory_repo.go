package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type inventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepo creates a PostgreSQL-backed InventoryRepository.
func NewInventoryRepo(db *sqlx.DB) port.InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory_items (id, product_id, warehouse, location, lot_number, quantity_lb, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.ProductID, item.Warehouse, item.Location, item.LotNumber, item.QuantityLB, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Create: %w", err)
	}
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM inventory_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inventoryRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *inventoryRepo) List(ctx context.Context, f port.ListFilter) ([]domain.InventoryItem, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM inventory_items
		 WHERE ($1 = '' OR warehouse ILIKE '%' || $1 || '%' OR lot_number ILIKE '%' || $1 || '%')`, f.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("inventoryRepo.List count: %w", err)
	}

	items := []domain.InventoryItem{}
	err = r.db.SelectContext(ctx, &items,
		`SELECT * FROM inventory_items
		 WHERE ($1 = '' OR warehouse ILIKE '%' || $1 || '%' OR lot_number ILIKE '%' || $1 || '%')
		 ORDER BY warehouse ASC, location ASC LIMIT $2 OFFSET $3`,
		f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("inventoryRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *inventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE inventory_items SET product_id = $1, warehouse = $2, location = $3,
		 lot_number = $4, quantity_lb = $5, updated_at = $6 WHERE id = $7`,
		item.ProductID, item.Warehouse, item.Location, item.LotNumber, item.QuantityLB, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
