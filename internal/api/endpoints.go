package api

import (
	"context"
	"net/http"

	"github.com/xolan/mood/internal/journal"
)

// API paths.
const (
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
	PathJournals = "/api/journals"
)

// Credentials is the login/register request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var resp AuthResponse
	err := c.Do(ctx, http.MethodPost, PathLogin, creds, &resp)
	return resp, err
}

// Register creates an account and returns its token.
func (c *Client) Register(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var resp AuthResponse
	err := c.Do(ctx, http.MethodPost, PathRegister, creds, &resp)
	return resp, err
}

// CreateEntry persists a new entry and returns it as stored.
func (c *Client) CreateEntry(ctx context.Context, e journal.NewEntry) (journal.Entry, error) {
	var created journal.Entry
	err := c.Do(ctx, http.MethodPost, PathJournals, e, &created)
	return created, err
}

// ListEntries returns every entry of the authenticated user in server order.
func (c *Client) ListEntries(ctx context.Context) ([]journal.Entry, error) {
	entries := []journal.Entry{}
	if err := c.Do(ctx, http.MethodGet, PathJournals, nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	return entries, nil
}
