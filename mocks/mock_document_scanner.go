package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"metalflow/internal/port"
)

type MockDocumentScanner struct {
	mock.Mock
}

func (m *MockDocumentScanner) Scan(ctx context.Context, input port.ScanInput) (*port.ScanResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ScanResult), args.Error(1)
}
