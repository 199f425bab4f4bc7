package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/bag/internal/store"
)

// InputError indicates a value typed by the user was rejected.
type InputError struct {
	Field   string // the prompt that was being answered
	Message string // what went wrong
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return Red("error: ") + err.Error()
}

// Hint returns a suggestion for recovering from a store error, or "".
func Hint(err error) string {
	switch {
	case errors.Is(err, store.ErrCapacityExceeded):
		return "remove an item or use the list store, which has no limit"
	case errors.Is(err, store.ErrNotFound):
		return "names are case-sensitive; use list to see stored names"
	case errors.Is(err, store.ErrAllocation):
		return "the item was not added; try again"
	default:
		return ""
	}
}
