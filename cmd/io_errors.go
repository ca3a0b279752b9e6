package cmd

import (
	"errors"
	"fmt"

	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/service"
)

const loginHint = "Run 'mood login' first"

// fail prints summary, the error details and a hint to stderr, then exits 1.
// Empty parts are left out.
func fail(summary string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", summary)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// failRequest reports a failed API call, picking the hint from the kind of
// failure.
func failRequest(summary string, err error, apiURL string) {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		fail("Not logged in", nil, loginHint)
	case journal.IsValidation(err):
		fail(summary, err, "")
	case errors.As(err, &reqErr) && reqErr.Unauthorized():
		fail(summary, errors.New(api.MessageOr(err, "unauthorized")),
			"Your session may have expired. Run 'mood login' to sign in again")
	case errors.As(err, &reqErr) && reqErr.Status == 0:
		fail(summary, err, fmt.Sprintf("Check that the API is reachable at %s", apiURL))
	default:
		fail(summary, errors.New(api.MessageOr(err, err.Error())), "")
	}
}

// loadServices builds the services or reports why it could not.
func loadServices() *service.Services {
	services, err := deps.Services()
	if err != nil {
		fail("Failed to initialize", err, "Check your config file ('mood config') and MOOD_* environment variables")
		return nil
	}
	return services
}

// requireLogin guards commands that need a token.
func requireLogin(services *service.Services) bool {
	if services.Session.Authorized() {
		return true
	}
	fail("Not logged in", nil, loginHint)
	return false
}
