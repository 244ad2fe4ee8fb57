package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/mocks"
)

func newWireTransferFixture() (*mocks.MockWireTransferRepo, *mocks.MockInvoiceRepo, *mocks.MockEmailSender, WireTransferService) {
	repo := new(mocks.MockWireTransferRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	sender := new(mocks.MockEmailSender)
	svc := NewWireTransferService(repo, invoiceRepo, sender, "ops@example.com")
	return repo, invoiceRepo, sender, svc
}

func TestWireTransferCreate_StartsPendingAndNotifies(t *testing.T) {
	repo, invoiceRepo, sender, svc := newWireTransferFixture()
	invoiceID := uuid.New()
	createdBy := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, InvoiceNumber: "INV-2026-001"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(wt *domain.WireTransfer) bool {
		return wt.Status == domain.WireTransferPending && wt.CreatedBy == createdBy
	})).Return(nil)
	sender.On("Send", mock.Anything, "ops@example.com", mock.Anything, mock.Anything).Return(nil)

	wt, err := svc.Create(context.Background(), createdBy, CreateWireTransferInput{
		InvoiceID: invoiceID,
		Reference: "WT-55871",
		Amount:    decimal.NewFromFloat(12500.50),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WireTransferPending, wt.Status)
	sender.AssertExpectations(t)
}

func TestWireTransferCreate_UnknownInvoice(t *testing.T) {
	repo, invoiceRepo, _, svc := newWireTransferFixture()
	invoiceID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateWireTransferInput{
		InvoiceID: invoiceID,
		Reference: "WT-1",
		Amount:    decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWireTransferCreate_EmailFailureDoesNotFailRequest(t *testing.T) {
	repo, invoiceRepo, sender, svc := newWireTransferFixture()
	invoiceID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, InvoiceNumber: "INV-2026-002"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ses throttled"))

	_, err := svc.Create(context.Background(), uuid.New(), CreateWireTransferInput{
		InvoiceID: invoiceID,
		Reference: "WT-2",
		Amount:    decimal.NewFromInt(900),
	})
	assert.NoError(t, err)
}

func TestWireTransferDecide_DelegatesToRepo(t *testing.T) {
	repo, _, sender, svc := newWireTransferFixture()
	id := uuid.New()
	decidedBy := uuid.New()

	decided := &domain.WireTransfer{
		ID:        id,
		Reference: "WT-55871",
		Amount:    decimal.NewFromInt(500),
		Status:    domain.WireTransferApproved,
	}
	repo.On("Decide", mock.Anything, id, true, decidedBy, "looks good").Return(decided, nil)
	sender.On("Send", mock.Anything, "ops@example.com", mock.Anything, mock.Anything).Return(nil)

	wt, err := svc.Decide(context.Background(), id, decidedBy, DecideWireTransferInput{Approve: true, Note: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, domain.WireTransferApproved, wt.Status)
	repo.AssertExpectations(t)
}

func TestWireTransferDecide_AlreadyDecided(t *testing.T) {
	repo, _, sender, svc := newWireTransferFixture()
	id := uuid.New()

	repo.On("Decide", mock.Anything, id, false, mock.Anything, "").
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Decide(context.Background(), id, uuid.New(), DecideWireTransferInput{Approve: false})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
