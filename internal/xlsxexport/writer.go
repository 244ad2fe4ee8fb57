package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"metalflow/internal/domain"
)

const sheetName = "Invoices"

var columns = []string{
	"Invoice Number",
	"Customer",
	"Status",
	"Issue Date",
	"Due Date",
	"Total (USD)",
	"Created At",
}

// Writer builds the invoice register workbook.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the invoice register as an xlsx workbook. Customer
// names are looked up from the provided map; unknown ids leave the
// column empty.
func (w *Writer) Write(out io.Writer, invoices []domain.Invoice, customerNames map[uuid.UUID]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsxexport: renaming sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsxexport: writing header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("xlsxexport: applying header style: %w", err)
	}
	_ = f.SetColWidth(sheetName, "A", lastCol, 20)

	for i := range invoices {
		inv := &invoices[i]
		row := []interface{}{
			inv.InvoiceNumber,
			customerNames[inv.CustomerID],
			string(inv.Status),
			formatDate(inv.IssueDate),
			formatDate(inv.DueDate),
			inv.Total.InexactFloat64(),
			inv.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsxexport: writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("xlsxexport: writing workbook: %w", err)
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
