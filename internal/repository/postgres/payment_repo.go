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

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, invoice_id, amount, method, reference, paid_at, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.InvoiceID, p.Amount, p.Method, p.Reference, p.PaidAt, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.GetContext(ctx, &p, "SELECT * FROM payments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *paymentRepo) List(ctx context.Context, f port.ListFilter) ([]domain.Payment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM payments
		 WHERE ($1 = '' OR reference ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)`, f.Search, f.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List count: %w", err)
	}

	payments := []domain.Payment{}
	err = r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments
		 WHERE ($1 = '' OR reference ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		f.Search, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("paymentRepo.List: %w", err)
	}
	return payments, total, nil
}

func (r *paymentRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE invoice_id = $1 ORDER BY created_at DESC", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByInvoice: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE payments SET amount = $1, method = $2, reference = $3, paid_at = $4, updated_at = $5
		 WHERE id = $6`,
		p.Amount, p.Method, p.Reference, p.PaidAt, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("paymentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, changedBy uuid.UUID, note string) (*domain.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.UpdateStatus begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Payment
	err = tx.GetContext(ctx, &p, "SELECT * FROM payments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.UpdateStatus get: %w", err)
	}

	old := string(p.Status)
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE payments SET status = $1, updated_at = $2 WHERE id = $3", status, now, id); err != nil {
		return nil, fmt.Errorf("paymentRepo.UpdateStatus: %w", err)
	}
	if err := insertStatusHistory(ctx, tx, domain.EntityPayment, id, &old, string(status), changedBy, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("paymentRepo.UpdateStatus commit: %w", err)
	}
	p.Status = status
	p.UpdatedAt = now
	return &p, nil
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
