package service

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"metalflow/internal/port"
	"metalflow/internal/xlsxexport"
)

// ReportService produces downloadable exports.
type ReportService interface {
	InvoiceRegisterXLSX(ctx context.Context) ([]byte, error)
}

type reportService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	writer       *xlsxexport.Writer
}

// NewReportService creates a new ReportService implementation.
func NewReportService(invoiceRepo port.InvoiceRepository, customerRepo port.CustomerRepository) ReportService {
	return &reportService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		writer:       xlsxexport.NewWriter(),
	}
}

// InvoiceRegisterXLSX renders every invoice into a workbook with
// customer names resolved.
func (s *reportService) InvoiceRegisterXLSX(ctx context.Context) ([]byte, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{}
	for i := range invoices {
		id := invoices[i].CustomerID
		if _, ok := names[id]; ok {
			continue
		}
		if c, err := s.customerRepo.GetByID(ctx, id); err == nil {
			names[id] = c.Name
		}
	}

	var buf bytes.Buffer
	if err := s.writer.Write(&buf, invoices, names); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
