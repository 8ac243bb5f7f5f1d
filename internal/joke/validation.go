package joke

import "strings"

// Validate checks that all required text fields are present and non-empty.
// Returns a *ValidationError naming every missing field, or nil.
func Validate(j *Joke) error {
	var missing []string

	if strings.TrimSpace(j.Setup) == "" {
		missing = append(missing, "setup")
	}
	if strings.TrimSpace(j.Punchline) == "" {
		missing = append(missing, "punchline")
	}
	if strings.TrimSpace(j.Author) == "" {
		missing = append(missing, "name")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
