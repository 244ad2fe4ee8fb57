package service

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateShipmentInput is the DTO for creating a shipment.
type CreateShipmentInput struct {
	CustomerID     uuid.UUID  `json:"customer_id" binding:"required"`
	InvoiceID      *uuid.UUID `json:"invoice_id"`
	Carrier        string     `json:"carrier"`
	TrackingNumber string     `json:"tracking_number"`
	ShippedAt      string     `json:"shipped_at" binding:"omitempty,datetime=2006-01-02"`
	Notes          string     `json:"notes"`
}

// UpdateShipmentInput is the DTO for updating a shipment.
type UpdateShipmentInput struct {
	Carrier        *string `json:"carrier"`
	TrackingNumber *string `json:"tracking_number"`
	ShippedAt      *string `json:"shipped_at" binding:"omitempty,datetime=2006-01-02"`
	DeliveredAt    *string `json:"delivered_at" binding:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes"`
}

// ShipmentService defines the shipment management contract.
type ShipmentService interface {
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.Shipment, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateShipmentInput) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus, changedBy uuid.UUID, note string) (*domain.Shipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shipmentService struct {
	repo         port.ShipmentRepository
	customerRepo port.CustomerRepository
	invoiceRepo  port.InvoiceRepository
}

// NewShipmentService creates a new ShipmentService implementation.
func NewShipmentService(
	repo port.ShipmentRepository,
	customerRepo port.CustomerRepository,
	invoiceRepo port.InvoiceRepository,
) ShipmentService {
	return &shipmentService{repo: repo, customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

func (s *shipmentService) Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error) {
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	if input.InvoiceID != nil {
		if _, err := s.invoiceRepo.GetByID(ctx, *input.InvoiceID); err != nil {
			return nil, err
		}
	}

	sh := &domain.Shipment{
		CustomerID:     input.CustomerID,
		InvoiceID:      input.InvoiceID,
		Carrier:        input.Carrier,
		TrackingNumber: input.TrackingNumber,
		Status:         domain.ShipmentStatusPending,
		ShippedAt:      parseDate(input.ShippedAt),
		Notes:          input.Notes,
	}
	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *shipmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *shipmentService) List(ctx context.Context, f port.ListFilter) ([]domain.Shipment, int, error) {
	return s.repo.List(ctx, f)
}

func (s *shipmentService) Update(ctx context.Context, id uuid.UUID, input UpdateShipmentInput) (*domain.Shipment, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Carrier != nil {
		sh.Carrier = *input.Carrier
	}
	if input.TrackingNumber != nil {
		sh.TrackingNumber = *input.TrackingNumber
	}
	if input.ShippedAt != nil {
		sh.ShippedAt = parseDate(*input.ShippedAt)
	}
	if input.DeliveredAt != nil {
		sh.DeliveredAt = parseDate(*input.DeliveredAt)
	}
	if input.Notes != nil {
		sh.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *shipmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus, changedBy uuid.UUID, note string) (*domain.Shipment, error) {
	if !domain.ValidShipmentStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, changedBy, note)
}

func (s *shipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
