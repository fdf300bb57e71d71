package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Create must respect
// the unique indexes on username and email and surface duplicates as
// domain.ErrUsernameTaken / domain.ErrEmailRegistered.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
