package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError reports a request that did not produce a 2xx response.
// Status is 0 when no response was received.
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %d %s: %v", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Unauthorized reports a 401 response. The client does not act on it.
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// MessageOr returns the server-provided message carried by err, or
// fallback when there is none.
func MessageOr(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
