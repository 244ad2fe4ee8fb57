package service

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// CreateSupplierInput is the DTO for creating a supplier.
type CreateSupplierInput struct {
	Name         string `json:"name" binding:"required"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	VATNumber    string `json:"vat_number"`
	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
}

// UpdateSupplierInput is the DTO for updating a supplier.
type UpdateSupplierInput struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	VATNumber    *string `json:"vat_number"`
	PaymentTerms *string `json:"payment_terms"`
	Notes        *string `json:"notes"`
}

// SupplierService defines the supplier management contract.
type SupplierService interface {
	Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, f port.ListFilter) ([]domain.Supplier, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo port.SupplierRepository
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(repo port.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	sup := &domain.Supplier{
		Name:         input.Name,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		VATNumber:    input.VATNumber,
		PaymentTerms: input.PaymentTerms,
		Notes:        input.Notes,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, f port.ListFilter) ([]domain.Supplier, int, error) {
	return s.repo.List(ctx, f)
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sup.Name = *input.Name
	}
	if input.ContactName != nil {
		sup.ContactName = *input.ContactName
	}
	if input.Email != nil {
		sup.Email = *input.Email
	}
	if input.Phone != nil {
		sup.Phone = *input.Phone
	}
	if input.Address != nil {
		sup.Address = *input.Address
	}
	if input.VATNumber != nil {
		sup.VATNumber = *input.VATNumber
	}
	if input.PaymentTerms != nil {
		sup.PaymentTerms = *input.PaymentTerms
	}
	if input.Notes != nil {
		sup.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
