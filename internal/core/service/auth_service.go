package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
	"github.com/hcharper/portfolio-api/internal/pkg/password"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
	}
}

// Register validates the payload in a fixed order (first failure wins),
// persists the user and issues a token. The stored role is always RoleUser:
// self-registration can never mint an admin, no matter what the request
// body contained.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" || in.Password == "" {
		return "", nil, &domain.ValidationError{Message: "Username, email, and password are required"}
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return "", nil, &domain.ValidationError{Message: "Invalid email format"}
	}
	if len(in.Password) < 6 {
		return "", nil, &domain.ValidationError{Message: "Password must be at least 6 characters long"}
	}
	if len(in.Password) > password.MaxLength {
		return "", nil, &domain.ValidationError{Message: "Password must be at most 72 characters long"}
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailRegistered
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and issues a token. An unknown username and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, *domain.User, error) {
	if username == "" || plaintext == "" {
		return "", nil, &domain.ValidationError{Message: "Username and password are required"}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}
