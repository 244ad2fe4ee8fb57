package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/internal/pdf"
	"metalflow/internal/template"
	"metalflow/mocks"
)

func newInvoiceFixture(t *testing.T) (*mocks.MockInvoiceRepo, *mocks.MockCustomerRepo, InvoiceService) {
	t.Helper()
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	svc := NewInvoiceService(repo, customerRepo, pdf.NewEngine(), template.NewStore(t.TempDir()))
	return repo, customerRepo, svc
}

func TestInvoiceCreate_RecomputesTotal(t *testing.T) {
	repo, customerRepo, svc := newInvoiceFixture(t)
	customerID := uuid.New()

	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := svc.Create(context.Background(), uuid.New(), CreateInvoiceInput{
		InvoiceNumber: "INV-2026-010",
		CustomerID:    customerID,
		IssueDate:     "2026-08-01",
		LineItems: []InvoiceLineItem{
			{Reference: "CU-01", QuantityLB: decimal.NewFromInt(1000), PricePerLB: decimal.NewFromFloat(4.25)},
			{Reference: "AL-02", QuantityLB: decimal.NewFromInt(500), PricePerLB: decimal.NewFromFloat(1.10)},
		},
	})
	require.NoError(t, err)
	assert.True(t, inv.Total.Equal(decimal.NewFromFloat(4800)), "got total %s", inv.Total)
	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	require.NotNil(t, inv.IssueDate)
	assert.Equal(t, "2026-08-01", inv.IssueDate.Format("2006-01-02"))
}

func TestInvoiceCreate_UnknownCustomer(t *testing.T) {
	repo, customerRepo, svc := newInvoiceFixture(t)
	customerID := uuid.New()

	customerRepo.On("GetByID", mock.Anything, customerID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateInvoiceInput{
		InvoiceNumber: "INV-2026-011",
		CustomerID:    customerID,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo, _, svc := newInvoiceFixture(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.InvoiceStatus("archived"), uuid.New(), "")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceUpdate_LineItemsRecomputeTotal(t *testing.T) {
	repo, _, svc := newInvoiceFixture(t)
	id := uuid.New()

	existing := &domain.Invoice{
		ID:            id,
		InvoiceNumber: "INV-2026-012",
		Total:         decimal.NewFromInt(999),
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.Total.Equal(decimal.NewFromInt(250))
	})).Return(nil)

	items := []InvoiceLineItem{
		{Reference: "ZN-03", QuantityLB: decimal.NewFromInt(100), PricePerLB: decimal.NewFromFloat(2.5)},
	}
	inv, err := svc.Update(context.Background(), id, UpdateInvoiceInput{LineItems: &items})
	require.NoError(t, err)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(250)))
}

func TestGenerateInvoicePDF_FromStoredInvoice(t *testing.T) {
	repo, customerRepo, svc := newInvoiceFixture(t)
	id := uuid.New()
	customerID := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{
		ID:            id,
		InvoiceNumber: "INV 2026/013",
		CustomerID:    customerID,
		LineItems:     []byte(`[{"reference":"CU-01","commercial_name":"Copper Cathode","quantity_lb":"1000","price_per_lb":"4.25"}]`),
	}, nil)
	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Acme Alloys BV"}, nil)

	out, filename, err := svc.GenerateInvoicePDF(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, "INV_2026_013.pdf", filename)
	assert.True(t, len(out) > 4 && string(out[:4]) == "%PDF")
}
