package port

import (
	"context"

	"metalflow/internal/domain"
)

// WarehouseStockRepository handles the wholesale-replaced warehouse snapshot.
// ReplaceAll deletes every existing row, inserts the given rows and writes
// the upload audit record in a single transaction.
type WarehouseStockRepository interface {
	ReplaceAll(ctx context.Context, rows []domain.WarehouseStock, upload *domain.StockUpload) (int, error)
	List(ctx context.Context, f ListFilter) ([]domain.WarehouseStock, int, error)
	ListUploads(ctx context.Context, f ListFilter) ([]domain.StockUpload, int, error)
}
