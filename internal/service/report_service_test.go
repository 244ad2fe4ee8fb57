package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"metalflow/internal/domain"
	"metalflow/mocks"
)

func TestInvoiceRegisterXLSX_ResolvesCustomerNames(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	svc := NewReportService(invoiceRepo, customerRepo)
	customerID := uuid.New()

	invoiceRepo.On("ListAll", mock.Anything).Return([]domain.Invoice{
		{InvoiceNumber: "INV-2026-001", CustomerID: customerID, Status: domain.InvoiceStatusSent, Total: decimal.NewFromFloat(4800)},
		{InvoiceNumber: "INV-2026-002", CustomerID: customerID, Status: domain.InvoiceStatusDraft, Total: decimal.NewFromInt(250)},
	}, nil)
	customerRepo.On("GetByID", mock.Anything, customerID).
		Return(&domain.Customer{ID: customerID, Name: "Acme Alloys BV"}, nil).Once()

	out, err := svc.InvoiceRegisterXLSX(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	got, err := wb.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Alloys BV", got)

	// One lookup serves both rows.
	customerRepo.AssertNumberOfCalls(t, "GetByID", 1)
}
