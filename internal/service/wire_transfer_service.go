package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateWireTransferInput is the DTO for submitting a wire transfer.
type CreateWireTransferInput struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	BankName  string          `json:"bank_name"`
	Reference string          `json:"reference" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// DecideWireTransferInput is the DTO for approving or rejecting a
// pending transfer.
type DecideWireTransferInput struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

// WireTransferService defines the wire-transfer contract. Transfers
// start pending; approval marks the parent invoice paid.
type WireTransferService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateWireTransferInput) (*domain.WireTransfer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WireTransfer, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.WireTransfer, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.WireTransfer, error)
	Decide(ctx context.Context, id uuid.UUID, decidedBy uuid.UUID, input DecideWireTransferInput) (*domain.WireTransfer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wireTransferService struct {
	repo         port.WireTransferRepository
	invoiceRepo  port.InvoiceRepository
	email        port.EmailSender
	adminAddress string
}

// NewWireTransferService creates a new WireTransferService implementation.
func NewWireTransferService(
	repo port.WireTransferRepository,
	invoiceRepo port.InvoiceRepository,
	email port.EmailSender,
	adminAddress string,
) WireTransferService {
	return &wireTransferService{
		repo:         repo,
		invoiceRepo:  invoiceRepo,
		email:        email,
		adminAddress: adminAddress,
	}
}

func (s *wireTransferService) Create(ctx context.Context, createdBy uuid.UUID, input CreateWireTransferInput) (*domain.WireTransfer, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	wt := &domain.WireTransfer{
		InvoiceID: input.InvoiceID,
		BankName:  input.BankName,
		Reference: input.Reference,
		Amount:    input.Amount,
		Status:    domain.WireTransferPending,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, wt); err != nil {
		return nil, err
	}

	s.notifyAdmin(ctx, fmt.Sprintf("Wire transfer %s pending approval", wt.Reference),
		fmt.Sprintf("A wire transfer of %s against invoice %s is awaiting approval.",
			wt.Amount.StringFixed(2), inv.InvoiceNumber))

	return wt, nil
}

func (s *wireTransferService) GetByID(ctx context.Context, id uuid.UUID) (*domain.WireTransfer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *wireTransferService) List(ctx context.Context, f port.ListFilter) ([]domain.WireTransfer, int, error) {
	return s.repo.List(ctx, f)
}

func (s *wireTransferService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.WireTransfer, error) {
	return s.repo.ListByInvoice(ctx, invoiceID)
}

func (s *wireTransferService) Decide(ctx context.Context, id uuid.UUID, decidedBy uuid.UUID, input DecideWireTransferInput) (*domain.WireTransfer, error) {
	wt, err := s.repo.Decide(ctx, id, input.Approve, decidedBy, input.Note)
	if err != nil {
		return nil, err
	}

	verdict := "rejected"
	if input.Approve {
		verdict = "approved"
	}
	s.notifyAdmin(ctx, fmt.Sprintf("Wire transfer %s %s", wt.Reference, verdict),
		fmt.Sprintf("Wire transfer %s for %s was %s.", wt.Reference, wt.Amount.StringFixed(2), verdict))

	return wt, nil
}

func (s *wireTransferService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// notifyAdmin delivers a best-effort notification. Send failures are
// logged, never surfaced to the caller.
func (s *wireTransferService) notifyAdmin(ctx context.Context, subject, body string) {
	if s.adminAddress == "" {
		return
	}
	if err := s.email.Send(ctx, s.adminAddress, subject, body); err != nil {
		log.Printf("wire transfer notification failed: %v", err)
	}
}
