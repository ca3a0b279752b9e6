// Package apitest provides an in-memory journaling API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/journal"
)

type failure struct {
	status  int
	message string
}

// Server is a fake journaling API backed by memory. It mirrors the real
// API's routes and error envelope ({"message": "..."}).
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string // email -> password
	tokens   map[string]string // token -> email
	entries  map[string][]journal.Entry
	failures map[string]failure // "METHOD /path" -> forced failure
	requests map[string]int
	now      func() time.Time
}

// NewServer starts a fake API. It is closed with t.Cleanup by callers.
func NewServer() *Server {
	s := &Server{
		users:    make(map[string]string),
		tokens:   make(map[string]string),
		entries:  make(map[string][]journal.Entry),
		failures: make(map[string]failure),
		requests: make(map[string]int),
		now:      time.Now,
	}
	s.Server = httptest.NewServer(s.Router())
	return s
}

// Router returns the chi router serving the fake API.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.countRequests)
	r.Use(s.injectFailures)

	r.Post(api.PathLogin, s.handleLogin)
	r.Post(api.PathRegister, s.handleRegister)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get(api.PathJournals, s.handleList)
		r.Post(api.PathJournals, s.handleCreate)
	})
	return r
}

// SetClock fixes the time stamped on created entries.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddUser registers an account.
func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(email)] = password
}

// IssueToken returns a valid token for email, creating the account if needed.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	if _, ok := s.users[email]; !ok {
		s.users[email] = ""
	}
	return s.issueLocked(email)
}

// Seed stores entries for email as if they had been created earlier.
func (s *Server) Seed(email string, entries ...journal.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Activities == nil {
			e.Activities = []string{}
		}
		s.entries[email] = append(s.entries[email], e)
	}
}

// Entries returns the stored entries of email in creation order.
func (s *Server) Entries(email string) []journal.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]journal.Entry(nil), s.entries[strings.ToLower(email)]...)
}

// Fail makes every request to method+path answer status with message
// until Recover is called.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Recover removes all forced failures.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// Requests returns how many requests hit method+path.
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			writeError(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tok, found := strings.CutPrefix(header, "Bearer ")
		if !found || tok == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		s.mu.Lock()
		email, ok := s.tokens[tok]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		r.Header.Set("X-User", email)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	password, ok := s.users[email]
	if !ok || password != creds.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, api.AuthResponse{Token: s.issueLocked(email)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}
	s.users[email] = creds.Password
	writeJSON(w, http.StatusCreated, api.AuthResponse{Token: s.issueLocked(email)})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("X-User")

	s.mu.Lock()
	stored := s.entries[email]
	// newest first, like the real API
	out := make([]journal.Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("X-User")

	var req journal.NewEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Mood < journal.MinMood || req.Mood > journal.MaxMood {
		writeError(w, http.StatusBadRequest, journal.MoodRangeMessage)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}
	if req.Activities == nil {
		req.Activities = []string{}
	}

	s.mu.Lock()
	e := journal.Entry{
		ID:         uuid.NewString(),
		Mood:       req.Mood,
		Activities: req.Activities,
		Content:    req.Content,
		Date:       s.now().UTC(),
	}
	s.entries[email] = append(s.entries[email], e)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) issueLocked(email string) string {
	tok := uuid.NewString()
	s.tokens[tok] = email
	return tok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}
