// Package client is a small SDK for the portfolio API. It covers the
// credential endpoints and a persistent session store so command-line
// tools and other Go programs can authenticate once and reuse the token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// AuthUser is the sanitized account identity returned by the API. It never
// carries credential material.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResult mirrors the API's auth envelope. Success is false for any
// rejected attempt; Message explains why.
type AuthResult struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token,omitempty"`
	User    *AuthUser `json:"user,omitempty"`
}

// Client talks to the portfolio API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL. A nil httpClient gets a
// default with a request timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. A non-2xx response is not an error: the
// decoded envelope reports the failure. The returned error covers transport
// and decoding problems only.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	return c.post(ctx, "/api/auth/register", registerPayload{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login exchanges credentials for a token. Error semantics match Register.
func (c *Client) Login(ctx context.Context, username, password string) (AuthResult, error) {
	return c.post(ctx, "/api/auth/login", loginPayload{
		Username: username,
		Password: password,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) (AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return AuthResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return AuthResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return AuthResult{}, fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	var out AuthResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return AuthResult{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
