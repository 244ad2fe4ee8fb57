package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/internal/port"
	"metalflow/mocks"
)

func TestStatusHistory_ListByEntity(t *testing.T) {
	repo := new(mocks.MockStatusHistoryRepo)
	svc := NewStatusHistoryService(repo)
	entityID := uuid.New()

	entries := []domain.StatusHistory{
		{EntityType: domain.EntityInvoice, EntityID: entityID, NewStatus: "sent"},
	}
	repo.On("ListByEntity", mock.Anything, domain.EntityInvoice, entityID, mock.Anything).
		Return(entries, 1, nil)

	got, total, err := svc.ListByEntity(context.Background(), domain.EntityInvoice, entityID, port.ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "sent", got[0].NewStatus)
}

func TestStatusHistory_UnknownEntityType(t *testing.T) {
	repo := new(mocks.MockStatusHistoryRepo)
	svc := NewStatusHistoryService(repo)

	_, _, err := svc.ListByEntity(context.Background(), "warehouse", uuid.New(), port.ListFilter{})
	require.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "ListByEntity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
