package client

import (
	"context"
	"sync"
)

// Store holds the in-memory session and keeps it in sync with a Storage
// backend. It is safe for concurrent use. Until Hydrate completes the
// store reports Loading, so callers can distinguish "not logged in" from
// "not restored yet".
type Store struct {
	mu      sync.Mutex
	client  *Client
	storage Storage

	token   string
	user    *AuthUser
	loading bool
}

// NewStore creates a Store bound to the given API client and storage.
// Call Hydrate before reading session state.
func NewStore(client *Client, storage Storage) *Store {
	return &Store{client: client, storage: storage, loading: true}
}

// Hydrate restores a previously persisted session. A missing or unreadable
// session leaves the store logged out; either way the store stops loading.
// Only the first call has any effect.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		return nil
	}
	s.loading = false

	sess, err := s.storage.Read()
	if err != nil {
		return err
	}
	if sess != nil && sess.Token != "" {
		s.token = sess.Token
		s.user = sess.User
	}
	return nil
}

// Login authenticates and, on success, atomically replaces the in-memory
// session and the persisted copy. Any failure, transport errors and a
// session that cannot be persisted included, is reported as an
// unsuccessful result, not an error, so callers handle one shape.
func (s *Store) Login(ctx context.Context, username, password string) AuthResult {
	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		return AuthResult{Success: false, Message: "Network error. Please try again."}
	}
	if res.Success {
		if err := s.adopt(res); err != nil {
			return AuthResult{Success: false, Message: "Could not save session. Please try again."}
		}
	}
	return res
}

// Register creates an account and adopts the returned session on success.
// Failure semantics match Login.
func (s *Store) Register(ctx context.Context, username, email, password string) AuthResult {
	res, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return AuthResult{Success: false, Message: "Network error. Please try again."}
	}
	if res.Success {
		if err := s.adopt(res); err != nil {
			return AuthResult{Success: false, Message: "Could not save session. Please try again."}
		}
	}
	return res
}

// Logout drops the session from memory and storage. Calling it while
// logged out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	return s.storage.Clear()
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the current identity, or nil when logged out.
func (s *Store) User() *AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether Hydrate has run yet.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsLoggedIn is derived from the presence of a token and identity.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// IsAdmin is derived from the current identity's role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == "admin"
}

// adopt persists a successful auth result and then installs it in memory.
// Persisting first keeps the two copies in agreement: a write failure
// leaves the store logged out rather than holding a session that would
// vanish on the next restart.
func (s *Store) adopt(res AuthResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Write(&Session{Token: res.Token, User: res.User}); err != nil {
		return err
	}
	s.token = res.Token
	s.user = res.User
	s.loading = false
	return nil
}
