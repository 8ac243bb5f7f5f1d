package joke

import (
	"errors"
	"strings"
)

// Domain errors for the joke package.
//
// These errors can be checked using errors.Is() / errors.As():
//
//	if errors.Is(err, joke.ErrJokeNotFound) {
//	    // handle not found case
//	}
var (
	// ErrJokeNotFound is returned when a joke ID does not exist,
	// or when picking a random joke from an empty store.
	ErrJokeNotFound = errors.New("joke: not found")
)

// ValidationError reports required fields that were missing or empty
// at create time. No write occurs when validation fails.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "joke: missing required fields: " + strings.Join(e.Fields, ", ")
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
