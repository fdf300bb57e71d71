package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// RegisterInput carries the self-registration payload. There is no role
// field on purpose: the service assigns RoleUser unconditionally, so a
// client-supplied role can never reach persistence.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService issues credentials: registration and login both return a
// signed token plus the sanitized persisted user.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
