package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type MockWireTransferRepo struct {
	mock.Mock
}

func (m *MockWireTransferRepo) Create(ctx context.Context, wt *domain.WireTransfer) error {
	args := m.Called(ctx, wt)
	return args.Error(0)
}

func (m *MockWireTransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WireTransfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WireTransfer), args.Error(1)
}

func (m *MockWireTransferRepo) List(ctx context.Context, f port.ListFilter) ([]domain.WireTransfer, int, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.WireTransfer), args.Int(1), args.Error(2)
}

func (m *MockWireTransferRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.WireTransfer, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WireTransfer), args.Error(1)
}

func (m *MockWireTransferRepo) Decide(ctx context.Context, id uuid.UUID, approve bool, decidedBy uuid.UUID, note string) (*domain.WireTransfer, error) {
	args := m.Called(ctx, id, approve, decidedBy, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WireTransfer), args.Error(1)
}

func (m *MockWireTransferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
