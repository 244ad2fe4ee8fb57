package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type MockWarehouseStockRepo struct {
	mock.Mock
}

func (m *MockWarehouseStockRepo) ReplaceAll(ctx context.Context, rows []domain.WarehouseStock, upload *domain.StockUpload) (int, error) {
	args := m.Called(ctx, rows, upload)
	return args.Int(0), args.Error(1)
}

func (m *MockWarehouseStockRepo) List(ctx context.Context, f port.ListFilter) ([]domain.WarehouseStock, int, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.WarehouseStock), args.Int(1), args.Error(2)
}

func (m *MockWarehouseStockRepo) ListUploads(ctx context.Context, f port.ListFilter) ([]domain.StockUpload, int, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockUpload), args.Int(1), args.Error(2)
}
