package service

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
	"metalflow/internal/stockcsv"
)

// StockImportResult reports the outcome of a stock upload.
type StockImportResult struct {
	RowsInserted int       `json:"rows_inserted"`
	UploadID     uuid.UUID `json:"upload_id"`
}

// StockService defines the warehouse-stock import and query contract.
// Imports replace the whole snapshot atomically; parse failures occur
// before any row is touched.
type StockService interface {
	Import(ctx context.Context, raw []byte, filename, source string, uploadedBy uuid.UUID) (*StockImportResult, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.WarehouseStock, int, error)
	ListUploads(ctx context.Context, f port.ListFilter) ([]domain.StockUpload, int, error)
}

type stockService struct {
	repo port.WarehouseStockRepository
}

// NewStockService creates a new StockService implementation.
func NewStockService(repo port.WarehouseStockRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Import(ctx context.Context, raw []byte, filename, source string, uploadedBy uuid.UUID) (*StockImportResult, error) {
	rows, err := stockcsv.Parse(raw)
	if err != nil {
		return nil, err
	}

	upload := &domain.StockUpload{
		Filename:   filename,
		Source:     source,
		UploadedBy: uploadedBy,
	}
	inserted, err := s.repo.ReplaceAll(ctx, rows, upload)
	if err != nil {
		return nil, err
	}

	return &StockImportResult{RowsInserted: inserted, UploadID: upload.ID}, nil
}

func (s *stockService) List(ctx context.Context, f port.ListFilter) ([]domain.WarehouseStock, int, error) {
	return s.repo.List(ctx, f)
}

func (s *stockService) ListUploads(ctx context.Context, f port.ListFilter) ([]domain.StockUpload, int, error) {
	return s.repo.ListUploads(ctx, f)
}
