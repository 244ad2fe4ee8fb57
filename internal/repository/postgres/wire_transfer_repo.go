package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

type wireTransferRepo struct {
	db *sqlx.DB
}

// NewWireTransferRepo creates a PostgreSQL-backed WireTransferRepository.
func NewWireTransferRepo(db *sqlx.DB) port.WireTransferRepository {
	return &wireTransferRepo{db: db}
}

func (r *wireTransferRepo) Create(ctx context.Context, wt *domain.WireTransfer) error {
	wt.ID = uuid.New()
	wt.Status = domain.WireTransferPending
	wt.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wire_transfers (id, invoice_id, bank_name, reference, amount, status, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		wt.ID, wt.InvoiceID, wt.BankName, wt.Reference, wt.Amount, wt.Status, wt.CreatedBy, wt.CreatedAt)
	if err != nil {
		return fmt.Errorf("wireTransferRepo.Create: %w", err)
	}
	return nil
}

func (r *wireTransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WireTransfer, error) {
	var wt domain.WireTransfer
	err := r.db.GetContext(ctx, &wt, "SELECT * FROM wire_transfers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("wireTransferRepo.GetByID: %w", err)
	}
	return &wt, nil
}

func (r *wireTransferRepo) List(ctx context.Context, f port.ListFilter) ([]domain.WireTransfer, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM wire_transfers
		 WHERE ($1 = '' OR reference ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)`, f.Search, f.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("wireTransferRepo.List count: %w", err)
	}

	transfers := []domain.WireTransfer{}
	err = r.db.SelectContext(ctx, &transfers,
		`SELECT * FROM wire_transfers
		 WHERE ($1 = '' OR reference ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		f.Search, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("wireTransferRepo.List: %w", err)
	}
	return transfers, total, nil
}

func (r *wireTransferRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.WireTransfer, error) {
	transfers := []domain.WireTransfer{}
	err := r.db.SelectContext(ctx, &transfers,
		"SELECT * FROM wire_transfers WHERE invoice_id = $1 ORDER BY created_at DESC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("wireTransferRepo.ListByInvoice: %w", err)
	}
	return transfers, nil
}

// Decide applies the pending -> approved|rejected transition. On approval
// the parent invoice is marked paid in the same transaction, and both
// transitions land in the status-history ledger.
func (r *wireTransferRepo) Decide(ctx context.Context, id uuid.UUID, approve bool, decidedBy uuid.UUID, note string) (*domain.WireTransfer, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("wireTransferRepo.Decide begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var wt domain.WireTransfer
	err = tx.GetContext(ctx, &wt, "SELECT * FROM wire_transfers WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("wireTransferRepo.Decide get: %w", err)
	}
	if wt.Status != domain.WireTransferPending {
		return nil, domain.ErrInvalidTransition
	}

	newStatus := domain.WireTransferRejected
	if approve {
		newStatus = domain.WireTransferApproved
	}
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE wire_transfers SET status = $1, decided_by = $2, decided_at = $3 WHERE id = $4",
		newStatus, decidedBy, now, id); err != nil {
		return nil, fmt.Errorf("wireTransferRepo.Decide: %w", err)
	}

	old := string(domain.WireTransferPending)
	if err := insertStatusHistory(ctx, tx, domain.EntityWireTransfer, id, &old, string(newStatus), decidedBy, note); err != nil {
		return nil, err
	}

	if approve {
		var invStatus string
		err = tx.GetContext(ctx, &invStatus, "SELECT status FROM invoices WHERE id = $1 FOR UPDATE", wt.InvoiceID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("wireTransferRepo.Decide invoice get: %w", err)
		}
		if invStatus != string(domain.InvoiceStatusPaid) {
			if _, err := tx.ExecContext(ctx,
				"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
				domain.InvoiceStatusPaid, now, wt.InvoiceID); err != nil {
				return nil, fmt.Errorf("wireTransferRepo.Decide invoice update: %w", err)
			}
			if err := insertStatusHistory(ctx, tx, domain.EntityInvoice, wt.InvoiceID, &invStatus,
				string(domain.InvoiceStatusPaid), decidedBy, "wire transfer "+wt.Reference+" approved"); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("wireTransferRepo.Decide commit: %w", err)
	}
	wt.Status = newStatus
	wt.DecidedBy = &decidedBy
	wt.DecidedAt = &now
	return &wt, nil
}

func (r *wireTransferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM wire_transfers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("wireTransferRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
