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

type shipmentRepo struct {
	db *sqlx.DB
}

// NewShipmentRepo creates a PostgreSQL-backed ShipmentRepository.
func NewShipmentRepo(db *sqlx.DB) port.ShipmentRepository {
	return &shipmentRepo{db: db}
}

func (r *shipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	s.ID = uuid.New()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shipments (id, customer_id, invoice_id, carrier, tracking_number, status,
		 shipped_at, delivered_at, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.CustomerID, s.InvoiceID, s.Carrier, s.TrackingNumber, s.Status,
		s.ShippedAt, s.DeliveredAt, s.Notes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("shipmentRepo.Create: %w", err)
	}
	return nil
}

func (r *shipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	var s domain.Shipment
	err := r.db.GetContext(ctx, &s, "SELECT * FROM shipments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shipmentRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *shipmentRepo) List(ctx context.Context, f port.ListFilter) ([]domain.Shipment, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM shipments
		 WHERE ($1 = '' OR tracking_number ILIKE '%' || $1 || '%' OR carrier ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)`, f.Search, f.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("shipmentRepo.List count: %w", err)
	}

	shipments := []domain.Shipment{}
	err = r.db.SelectContext(ctx, &shipments,
		`SELECT * FROM shipments
		 WHERE ($1 = '' OR tracking_number ILIKE '%' || $1 || '%' OR carrier ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		f.Search, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("shipmentRepo.List: %w", err)
	}
	return shipments, total, nil
}

func (r *shipmentRepo) Update(ctx context.Context, s *domain.Shipment) error {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE shipments SET customer_id = $1, invoice_id = $2, carrier = $3, tracking_number = $4,
		 shipped_at = $5, delivered_at = $6, notes = $7, updated_at = $8 WHERE id = $9`,
		s.CustomerID, s.InvoiceID, s.Carrier, s.TrackingNumber,
		s.ShippedAt, s.DeliveredAt, s.Notes, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("shipmentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *shipmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus, changedBy uuid.UUID, note string) (*domain.Shipment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("shipmentRepo.UpdateStatus begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var s domain.Shipment
	err = tx.GetContext(ctx, &s, "SELECT * FROM shipments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shipmentRepo.UpdateStatus get: %w", err)
	}

	old := string(s.Status)
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3", status, now, id); err != nil {
		return nil, fmt.Errorf("shipmentRepo.UpdateStatus: %w", err)
	}
	if err := insertStatusHistory(ctx, tx, domain.EntityShipment, id, &old, string(status), changedBy, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("shipmentRepo.UpdateStatus commit: %w", err)
	}
	s.Status = status
	s.UpdatedAt = now
	return &s, nil
}

func (r *shipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM shipments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("shipmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
