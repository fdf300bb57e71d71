package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// CreateUserInput is the admin user-management payload. Unlike
// self-registration, an admin may assign any role here.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries optional field updates; nil pointers mean
// "leave unchanged".
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// UserService defines the admin-only user management use cases plus the
// authenticated single-user lookup.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
