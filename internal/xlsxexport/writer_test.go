package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"metalflow/internal/domain"
)

func TestWriteInvoiceRegister(t *testing.T) {
	customerID := uuid.New()
	issue := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		{
			ID:            uuid.New(),
			InvoiceNumber: "INV-2024-0001",
			CustomerID:    customerID,
			Status:        domain.InvoiceStatusSent,
			IssueDate:     &issue,
			Total:         decimal.RequireFromString("55115.56"),
			CreatedAt:     issue,
		},
	}
	names := map[uuid.UUID]string{customerID: "Acme Alloys BV"}

	var buf bytes.Buffer
	require.NoError(t, NewWriter().Write(&buf, invoices, names))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Number", header)

	number, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001", number)

	customer, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Alloys BV", customer)

	issueDate, err := f.GetCellValue(sheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", issueDate)
}

func TestWriteEmptyRegister(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Write(&buf, nil, nil))
	assert.NotZero(t, buf.Len())
}
