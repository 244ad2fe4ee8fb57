package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type MockStatusHistoryRepo struct {
	mock.Mock
}

func (m *MockStatusHistoryRepo) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, f port.ListFilter) ([]domain.StatusHistory, int, error) {
	args := m.Called(ctx, entityType, entityID, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StatusHistory), args.Int(1), args.Error(2)
}
