package ports

import "github.com/hcharper/portfolio-api/internal/core/domain"

// Claims is the decoded identity embedded in a session token.
type Claims struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// The token is the full session: the server keeps no session state, so a
// token stays valid until its embedded expiry.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrTokenExpired past the embedded expiry and
	// domain.ErrTokenInvalid for anything malformed, unsigned or tampered.
	Verify(token string) (*Claims, error)
}
