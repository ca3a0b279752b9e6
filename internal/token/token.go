// Package token persists the single bearer token that proves an authenticated
// session across restarts of the client.
package token

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/xolan/mood/internal/osutil"
)

// TokenFile is the name of the JSON token file inside the app directory.
const TokenFile = "token.json"

// ErrEmptyToken is returned by Set when the token is blank.
var ErrEmptyToken = errors.New("token is empty")

// Store holds at most one token.
type Store interface {
	// Get returns the current token, or false when none is stored.
	Get() (string, bool)
	// Set replaces the stored token.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// fileState is the on-disk layout of the token file.
type fileState struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// GetTokenPath returns the path to the token file, creating the app
// directory (0700) if needed.
func GetTokenPath() (string, error) {
	return osutil.AppPath(TokenFile, 0700)
}

// FileStore keeps the token in a JSON file readable only by the owner.
type FileStore struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithLogger sets the logger used to report unreadable token files.
func WithLogger(logger *slog.Logger) FileOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string, opts ...FileOption) *FileStore {
	s := &FileStore{
		path:   path,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the token file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get reads the token file. A missing, unreadable or corrupt file reads as
// no token.
func (s *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("token file unreadable", "path", s.path, "error", err)
		}
		return "", false
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("token file corrupt", "path", s.path, "error", err)
		return "", false
	}

	tok := StripBearer(state.Token)
	return tok, tok != ""
}

// Set writes the token using the temp file + rename pattern so a crash never
// leaves a half-written token behind.
func (s *FileStore) Set(token string) error {
	token = StripBearer(token)
	if token == "" {
		return ErrEmptyToken
	}

	// fileState contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(fileState{Token: token, SavedAt: s.now()}, "", "  ")

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	s.logger.Debug("token stored", "path", s.path)
	return nil
}

// Clear removes the token file.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.logger.Debug("token cleared", "path", s.path)
	return nil
}

// MemoryStore is an in-process Store, used by tests and by callers that must
// not touch the filesystem.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a store pre-loaded with token (may be empty).
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: StripBearer(token)}
}

// Get implements Store.
func (s *MemoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Set implements Store.
func (s *MemoryStore) Set(token string) error {
	token = StripBearer(token)
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

// StripBearer trims whitespace and a leading "Bearer " scheme.
func StripBearer(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "bearer") {
		return ""
	}
	if len(s) >= 7 && strings.EqualFold(s[:7], "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
