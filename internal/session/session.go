// Package session carries the authentication context through the client.
// A Session is created once at startup and passed explicitly to the API
// client, the services and the TUI; nothing reads the token store directly.
package session

import (
	"sync"

	"github.com/xolan/mood/internal/token"
)

// State is the authentication state of a session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Route is a navigable location in the client.
type Route string

const (
	// RouteLogin is public.
	RouteLogin Route = "/login"
	// RouteJournal requires a token.
	RouteJournal Route = "/"
)

// Protected reports whether the route requires authorization.
func (r Route) Protected() bool {
	return r == RouteJournal
}

// Authorizer answers whether the current user may reach protected routes.
type Authorizer interface {
	Authorized() bool
}

// Guard returns the route that should actually be shown when navigating to
// requested: protected routes fall back to the login route without a token.
func Guard(a Authorizer, requested Route) Route {
	if requested.Protected() && !a.Authorized() {
		return RouteLogin
	}
	return requested
}

// Session wraps the token store. It is safe for concurrent use because
// API calls read the token from command goroutines.
type Session struct {
	mu    sync.RWMutex
	store token.Store
}

// New returns a session backed by store.
func New(store token.Store) *Session {
	return &Session{store: store}
}

// Token returns the bearer token, if any.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Get()
}

// Authorized reports whether a token is present. The token is never
// validated client-side.
func (s *Session) Authorized() bool {
	_, ok := s.Token()
	return ok
}

// State returns the current authentication state.
func (s *Session) State() State {
	if s.Authorized() {
		return Authenticated
	}
	return Unauthenticated
}

// SignIn stores the token issued by a successful login or registration.
func (s *Session) SignIn(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(tok)
}

// SignOut discards the token.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear()
}
