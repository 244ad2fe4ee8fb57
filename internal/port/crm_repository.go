package port

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
)

// CustomerRepository handles persistence of customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, f ListFilter) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByNameSubstring(ctx context.Context, name string) (*domain.Customer, error)
}

// SupplierRepository handles persistence of suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, f ListFilter) ([]domain.Supplier, int, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByNameSubstring(ctx context.Context, name string) (*domain.Supplier, error)
}

// ProductRepository handles persistence of catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, f ListFilter) ([]domain.Product, int, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByNameOrSKUSubstring(ctx context.Context, term string) (*domain.Product, error)
}
