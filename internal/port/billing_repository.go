package port

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
)

// InvoiceRepository handles persistence of invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, f ListFilter) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus, changedBy uuid.UUID, note string) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository handles persistence of payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, f ListFilter) ([]domain.Payment, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, changedBy uuid.UUID, note string) (*domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WireTransferRepository handles persistence of wire transfers.
// Decide performs the pending -> approved|rejected transition and, on
// approval, marks the parent invoice paid in the same transaction.
type WireTransferRepository interface {
	Create(ctx context.Context, wt *domain.WireTransfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WireTransfer, error)
	List(ctx context.Context, f ListFilter) ([]domain.WireTransfer, int, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.WireTransfer, error)
	Decide(ctx context.Context, id uuid.UUID, approve bool, decidedBy uuid.UUID, note string) (*domain.WireTransfer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
