package port

import (
	"context"

	"github.com/google/uuid"

	"metalflow/internal/domain"
)

// ListFilter carries the common list-query parameters: page-based
// pagination plus an optional search term and status filter.
type ListFilter struct {
	Offset int
	Limit  int
	Search string
	Status string
}

// UserRepository handles persistence of users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, f ListFilter) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
