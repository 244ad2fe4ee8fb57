package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/pdf"
	"metalflow/internal/port"
	"metalflow/internal/template"
)

// InvoiceLineItem is one line of an invoice as stored in the line_items
// JSON document.
type InvoiceLineItem struct {
	Reference      string          `json:"reference"`
	CommercialName string          `json:"commercial_name"`
	Packaging      string          `json:"packaging"`
	QuantityLB     decimal.Decimal `json:"quantity_lb"`
	PricePerLB     decimal.Decimal `json:"price_per_lb"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	InvoiceNumber string            `json:"invoice_number" binding:"required"`
	CustomerID    uuid.UUID         `json:"customer_id" binding:"required"`
	IssueDate     string            `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       string            `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Terms         string            `json:"terms"`
	Currency      string            `json:"currency"`
	LineItems     []InvoiceLineItem `json:"line_items"`
}

// UpdateInvoiceInput is the DTO for updating an invoice.
type UpdateInvoiceInput struct {
	InvoiceNumber *string            `json:"invoice_number"`
	CustomerID    *uuid.UUID         `json:"customer_id"`
	IssueDate     *string            `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string            `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Terms         *string            `json:"terms"`
	Currency      *string            `json:"currency"`
	LineItems     *[]InvoiceLineItem `json:"line_items"`
}

// InvoiceService defines the invoice management contract. The invoice
// total is always recomputed from line items on write, never trusted
// from the client.
type InvoiceService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.Invoice, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, changedBy uuid.UUID, note string) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GeneratePDF(ctx context.Context, data *pdf.InvoiceData, useTemplate bool) ([]byte, string, error)
	GenerateInvoicePDF(ctx context.Context, id uuid.UUID, useTemplate bool) ([]byte, string, error)
}

type invoiceService struct {
	repo          port.InvoiceRepository
	customerRepo  port.CustomerRepository
	engine        *pdf.Engine
	templateStore *template.Store
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	repo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	engine *pdf.Engine,
	templateStore *template.Store,
) InvoiceService {
	return &invoiceService{
		repo:          repo,
		customerRepo:  customerRepo,
		engine:        engine,
		templateStore: templateStore,
	}
}

func (s *invoiceService) Create(ctx context.Context, createdBy uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	rawItems, total, err := encodeLineItems(input.LineItems)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	inv := &domain.Invoice{
		InvoiceNumber: input.InvoiceNumber,
		CustomerID:    input.CustomerID,
		IssueDate:     parseDate(input.IssueDate),
		DueDate:       parseDate(input.DueDate),
		Terms:         input.Terms,
		Currency:      currency,
		LineItems:     rawItems,
		Total:         total,
		Status:        domain.InvoiceStatusDraft,
		CreatedBy:     createdBy,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, f port.ListFilter) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, f)
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.InvoiceNumber != nil {
		inv.InvoiceNumber = *input.InvoiceNumber
	}
	if input.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *input.CustomerID); err != nil {
			return nil, err
		}
		inv.CustomerID = *input.CustomerID
	}
	if input.IssueDate != nil {
		inv.IssueDate = parseDate(*input.IssueDate)
	}
	if input.DueDate != nil {
		inv.DueDate = parseDate(*input.DueDate)
	}
	if input.Terms != nil {
		inv.Terms = *input.Terms
	}
	if input.Currency != nil {
		inv.Currency = *input.Currency
	}
	if input.LineItems != nil {
		rawItems, total, err := encodeLineItems(*input.LineItems)
		if err != nil {
			return nil, err
		}
		inv.LineItems = rawItems
		inv.Total = total
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, changedBy uuid.UUID, note string) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, changedBy, note)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GeneratePDF renders the posted invoice data. Template mode is only
// honored when a template file is actually stored; otherwise it falls
// back to the scratch layout.
func (s *invoiceService) GeneratePDF(_ context.Context, data *pdf.InvoiceData, useTemplate bool) ([]byte, string, error) {
	opts := pdf.Options{}

	cfg, err := s.templateStore.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	opts.Config = cfg

	if useTemplate {
		if path, ok := s.templateStore.TemplatePath(); ok {
			opts.TemplatePath = path
		}
	}
	return s.engine.Generate(data, opts)
}

// GenerateInvoicePDF builds InvoiceData from a stored invoice and its
// customer, then renders it.
func (s *invoiceService) GenerateInvoicePDF(ctx context.Context, id uuid.UUID, useTemplate bool) ([]byte, string, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	customer, err := s.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, "", err
	}

	var items []InvoiceLineItem
	if len(inv.LineItems) > 0 {
		if err := json.Unmarshal(inv.LineItems, &items); err != nil {
			return nil, "", fmt.Errorf("invoice %s: decoding line items: %w", inv.ID, err)
		}
	}

	data := &pdf.InvoiceData{
		InvoiceNumber:  inv.InvoiceNumber,
		IssueDate:      formatDate(inv.IssueDate),
		DueDate:        formatDate(inv.DueDate),
		PaymentTerms:   inv.Terms,
		ClientName:     customer.Name,
		ClientAddress1: customer.Address,
		ClientVAT:      customer.VATNumber,
	}
	for i, item := range items {
		data.Items = append(data.Items, pdf.LineItem{
			No:             i + 1,
			Reference:      item.Reference,
			CommercialName: item.CommercialName,
			Packaging:      item.Packaging,
			QuantityLB:     item.QuantityLB.InexactFloat64(),
			PricePerLB:     item.PricePerLB.InexactFloat64(),
		})
	}

	return s.GeneratePDF(ctx, data, useTemplate)
}

func encodeLineItems(items []InvoiceLineItem) (json.RawMessage, decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.QuantityLB.Mul(item.PricePerLB))
	}
	if items == nil {
		items = []InvoiceLineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("encoding line items: %w", err)
	}
	return raw, total, nil
}

// parseDate converts a validated YYYY-MM-DD string. Empty is nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
