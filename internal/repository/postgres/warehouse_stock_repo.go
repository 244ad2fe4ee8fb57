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

type warehouseStockRepo struct {
	db *sqlx.DB
}

// NewWarehouseStockRepo creates a PostgreSQL-backed WarehouseStockRepository.
func NewWarehouseStockRepo(db *sqlx.DB) port.WarehouseStockRepository {
	return &warehouseStockRepo{db: db}
}

// ReplaceAll swaps the warehouse snapshot wholesale. The delete, the
// inserts and the audit row share one transaction so a failure partway
// through leaves the previous snapshot untouched.
func (r *warehouseStockRepo) ReplaceAll(ctx context.Context, rows []domain.WarehouseStock, upload *domain.StockUpload) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("warehouseStockRepo.ReplaceAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM warehouse_stock"); err != nil {
		return 0, fmt.Errorf("warehouseStockRepo.ReplaceAll delete: %w", err)
	}

	inserted := 0
	for i := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO warehouse_stock (whs, location, article, description, stock, unit, weight_lb, lot)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rows[i].WHS, rows[i].Location, rows[i].Article, rows[i].Description,
			rows[i].Stock, rows[i].Unit, rows[i].WeightLB, rows[i].Lot)
		if err != nil {
			return 0, fmt.Errorf("warehouseStockRepo.ReplaceAll insert: %w", err)
		}
		inserted++
	}

	upload.ID = uuid.New()
	upload.RowCount = inserted
	upload.UploadedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO stock_uploads (id, filename, row_count, source, uploaded_by, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		upload.ID, upload.Filename, upload.RowCount, upload.Source, upload.UploadedBy, upload.UploadedAt)
	if err != nil {
		return 0, fmt.Errorf("warehouseStockRepo.ReplaceAll audit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("warehouseStockRepo.ReplaceAll commit: %w", err)
	}
	return inserted, nil
}

func (r *warehouseStockRepo) List(ctx context.Context, f port.ListFilter) ([]domain.WarehouseStock, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM warehouse_stock
		 WHERE ($1 = '' OR article ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`, f.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("warehouseStockRepo.List count: %w", err)
	}

	rows := []domain.WarehouseStock{}
	err = r.db.SelectContext(ctx, &rows,
		`SELECT * FROM warehouse_stock
		 WHERE ($1 = '' OR article ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		 ORDER BY whs ASC, article ASC LIMIT $2 OFFSET $3`,
		f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("warehouseStockRepo.List: %w", err)
	}
	return rows, total, nil
}

func (r *warehouseStockRepo) ListUploads(ctx context.Context, f port.ListFilter) ([]domain.StockUpload, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_uploads")
	if err != nil {
		return nil, 0, fmt.Errorf("warehouseStockRepo.ListUploads count: %w", err)
	}

	uploads := []domain.StockUpload{}
	err = r.db.SelectContext(ctx, &uploads,
		"SELECT * FROM stock_uploads ORDER BY uploaded_at DESC LIMIT $1 OFFSET $2",
		f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("warehouseStockRepo.ListUploads: %w", err)
	}
	return uploads, total, nil
}
