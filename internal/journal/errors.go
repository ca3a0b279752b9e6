package journal

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a state machine method is called in
// a state that does not allow it. The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid state transition")

// ValidationError reports a draft that must not be sent to the server.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
