package client

import (
	"encoding/json"
	"fmt"
	"os"
)

// Session is the persisted part of an authenticated session.
type Session struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user"`
}

// Storage persists a session between process runs. Read returns (nil, nil)
// when no session has been saved.
type Storage interface {
	Read() (*Session, error)
	Write(s *Session) error
	Clear() error
}

// FileStorage keeps the session as a JSON file, readable by the owner only.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Read() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (f *FileStorage) Write(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
