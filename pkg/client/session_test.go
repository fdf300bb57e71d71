package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func authServer(t *testing.T, status int, result AuthResult) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func tempStorage(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_Hydrate_RestoresSession(t *testing.T) {
	storage := tempStorage(t)
	if err := storage.Write(&Session{
		Token: "saved-token",
		User:  &AuthUser{ID: "u1", Username: "alice", Role: "admin"},
	}); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	store := NewStore(New("http://unused", nil), storage)
	if !store.Loading() {
		t.Fatalf("store should be loading before hydrate")
	}

	if err := store.Hydrate(); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	if store.Loading() {
		t.Fatalf("store should not be loading after hydrate")
	}
	if !store.IsLoggedIn() {
		t.Fatalf("expected logged in after restoring session")
	}
	if !store.IsAdmin() {
		t.Fatalf("expected admin derived from restored role")
	}
	if store.Token() != "saved-token" {
		t.Fatalf("unexpected token: %q", store.Token())
	}
}

func TestStore_Hydrate_EmptyStorage(t *testing.T) {
	store := NewStore(New("http://unused", nil), tempStorage(t))

	if err := store.Hydrate(); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if store.Loading() {
		t.Fatalf("store should not be loading after hydrate")
	}
	if store.IsLoggedIn() {
		t.Fatalf("expected logged out with empty storage")
	}
}

func TestStore_Login_PersistsSession(t *testing.T) {
	srv := authServer(t, http.StatusOK, AuthResult{
		Success: true,
		Message: "Login successful",
		Token:   "token123",
		User:    &AuthUser{ID: "u1", Username: "alice", Role: "user"},
	})

	storage := tempStorage(t)
	store := NewStore(New(srv.URL, nil), storage)

	res := store.Login(context.Background(), "alice", "secret")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if !store.IsLoggedIn() || store.IsAdmin() {
		t.Fatalf("expected non-admin login, got loggedIn=%v admin=%v", store.IsLoggedIn(), store.IsAdmin())
	}

	// Persisted copy matches memory.
	sess, err := storage.Read()
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if sess == nil || sess.Token != "token123" || sess.User == nil || sess.User.Username != "alice" {
		t.Fatalf("unexpected persisted session: %+v", sess)
	}
}

func TestStore_Login_FailureLeavesSessionUntouched(t *testing.T) {
	srv := authServer(t, http.StatusUnauthorized, AuthResult{
		Success: false,
		Message: "Invalid credentials",
	})

	storage := tempStorage(t)
	store := NewStore(New(srv.URL, nil), storage)
	_ = store.Hydrate()

	res := store.Login(context.Background(), "alice", "wrong")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Message != "Invalid credentials" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if store.IsLoggedIn() {
		t.Fatalf("failed login must not create a session")
	}

	sess, err := storage.Read()
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if sess != nil {
		t.Fatalf("failed login must not persist anything, got %+v", sess)
	}
}

type brokenStorage struct {
	writeErr error
}

func (b *brokenStorage) Read() (*Session, error) { return nil, nil }
func (b *brokenStorage) Write(s *Session) error  { return b.writeErr }
func (b *brokenStorage) Clear() error            { return nil }

func TestStore_Login_WriteFailureLeavesLoggedOut(t *testing.T) {
	srv := authServer(t, http.StatusOK, AuthResult{
		Success: true,
		Message: "Login successful",
		Token:   "token123",
		User:    &AuthUser{ID: "u1", Username: "alice", Role: "user"},
	})

	store := NewStore(New(srv.URL, nil), &brokenStorage{writeErr: errors.New("disk full")})
	_ = store.Hydrate()

	res := store.Login(context.Background(), "alice", "secret")
	if res.Success {
		t.Fatalf("login must fail when the session cannot be persisted")
	}
	if res.Message == "" {
		t.Fatalf("expected a user-facing message")
	}
	// Memory and storage stay in agreement: neither holds a session.
	if store.IsLoggedIn() || store.Token() != "" || store.User() != nil {
		t.Fatalf("in-memory session must not outlive a failed persist")
	}
}

func TestStore_Login_NetworkErrorNormalized(t *testing.T) {
	// Server that is already closed: every request fails at transport level.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	store := NewStore(New(srv.URL, nil), tempStorage(t))

	res := store.Login(context.Background(), "alice", "secret")
	if res.Success {
		t.Fatalf("expected failure result for network error")
	}
	if res.Message == "" {
		t.Fatalf("expected a user-facing message")
	}
	if store.IsLoggedIn() {
		t.Fatalf("network error must not create a session")
	}
}

func TestStore_Register_AdoptsSession(t *testing.T) {
	srv := authServer(t, http.StatusCreated, AuthResult{
		Success: true,
		Message: "User registered successfully",
		Token:   "token456",
		User:    &AuthUser{ID: "u2", Username: "bob", Role: "user"},
	})

	store := NewStore(New(srv.URL, nil), tempStorage(t))

	res := store.Register(context.Background(), "bob", "b@example.com", "secret")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if !store.IsLoggedIn() {
		t.Fatalf("expected logged in after registration")
	}
	if store.Token() != "token456" {
		t.Fatalf("unexpected token: %q", store.Token())
	}
}

func TestStore_Logout_ClearsEverything(t *testing.T) {
	srv := authServer(t, http.StatusOK, AuthResult{
		Success: true,
		Token:   "token123",
		User:    &AuthUser{ID: "u1", Username: "alice", Role: "user"},
	})

	storage := tempStorage(t)
	store := NewStore(New(srv.URL, nil), storage)
	_ = store.Login(context.Background(), "alice", "secret")

	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.IsLoggedIn() || store.Token() != "" || store.User() != nil {
		t.Fatalf("expected cleared session")
	}

	sess, err := storage.Read()
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected cleared storage, got %+v", sess)
	}

	// Logging out twice is fine.
	if err := store.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}
