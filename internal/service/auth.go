package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/session"
)

// Errors for credentials rejected before any request is sent
var (
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingPassword = errors.New("password is required")
	ErrInvalidEmail    = errors.New("email address is not valid")
)

// Messages shown when the server gives no reason for a rejected login
const (
	LoginFailedMessage    = "Login failed"
	RegisterFailedMessage = "Registration failed"
)

// AuthError reports a login or registration the server did not accept.
// Message is the server's message, or the fallback for the operation.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthService provides login, registration and logout
type AuthService struct {
	session *session.Session
	client  *api.Client
	logger  *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(sess *session.Session, client *api.Client, logger *slog.Logger) *AuthService {
	return &AuthService{
		session: sess,
		client:  client,
		logger:  logger,
	}
}

// Login exchanges credentials for a token and stores it. On failure the
// session is left unchanged.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "login", email, password, s.client.Login, LoginFailedMessage)
}

// Register creates an account and signs in with the returned token.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "register", email, password, s.client.Register, RegisterFailedMessage)
}

// Logout discards the stored token.
func (s *AuthService) Logout() error {
	if err := s.session.SignOut(); err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}

// Status returns the current authentication state
func (s *AuthService) Status() AuthStatus {
	return AuthStatus{
		State:  s.session.State(),
		APIURL: s.client.BaseURL(),
	}
}

type authCall func(context.Context, api.Credentials) (api.AuthResponse, error)

func (s *AuthService) authenticate(ctx context.Context, op, email, password string, call authCall, fallback string) error {
	email = strings.TrimSpace(email)
	if err := CheckCredentials(email, password); err != nil {
		return err
	}

	resp, err := call(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Warn(op+" rejected", "email", email, "error", err)
		return &AuthError{Op: op, Message: api.MessageOr(err, fallback), Err: err}
	}
	if strings.TrimSpace(resp.Token) == "" {
		s.logger.Warn(op+" returned no token", "email", email)
		return &AuthError{Op: op, Message: fallback}
	}

	if err := s.session.SignIn(resp.Token); err != nil {
		return err
	}
	s.logger.Info("signed in", "op", op, "email", email)
	return nil
}

// CheckCredentials performs the only checks made before contacting the
// server: both fields present and an email of the form local@domain.
func CheckCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingEmail
	}
	if password == "" {
		return ErrMissingPassword
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	return nil
}
