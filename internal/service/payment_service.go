package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreatePaymentInput is the DTO for recording a payment.
type CreatePaymentInput struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	PaidAt    string          `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePaymentInput is the DTO for updating a payment.
type UpdatePaymentInput struct {
	Amount    *decimal.Decimal `json:"amount"`
	Method    *string          `json:"method"`
	Reference *string          `json:"reference"`
	PaidAt    *string          `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}

// PaymentService defines the payment management contract.
type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.Payment, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, changedBy uuid.UUID, note string) (*domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	repo        port.PaymentRepository
	invoiceRepo port.InvoiceRepository
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(repo port.PaymentRepository, invoiceRepo port.InvoiceRepository) PaymentService {
	return &paymentService{repo: repo, invoiceRepo: invoiceRepo}
}

func (s *paymentService) Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	if _, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		InvoiceID: input.InvoiceID,
		Amount:    input.Amount,
		Method:    input.Method,
		Reference: input.Reference,
		PaidAt:    parseDate(input.PaidAt),
		Status:    domain.PaymentStatusPending,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *paymentService) List(ctx context.Context, f port.ListFilter) ([]domain.Payment, int, error) {
	return s.repo.List(ctx, f)
}

func (s *paymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	return s.repo.ListByInvoice(ctx, invoiceID)
}

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*domain.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		p.Amount = *input.Amount
	}
	if input.Method != nil {
		p.Method = *input.Method
	}
	if input.Reference != nil {
		p.Reference = *input.Reference
	}
	if input.PaidAt != nil {
		p.PaidAt = parseDate(*input.PaidAt)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, changedBy uuid.UUID, note string) (*domain.Payment, error) {
	if !domain.ValidPaymentStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, changedBy, note)
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
