package joke

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		joke       *Joke
		wantFields []string
	}{
		{
			name: "valid joke",
			joke: &Joke{Setup: "s", Punchline: "p", Author: "a"},
		},
		{
			name:       "missing setup",
			joke:       &Joke{Punchline: "p", Author: "a"},
			wantFields: []string{"setup"},
		},
		{
			name:       "missing punchline",
			joke:       &Joke{Setup: "s", Author: "a"},
			wantFields: []string{"punchline"},
		},
		{
			name:       "missing author",
			joke:       &Joke{Setup: "s", Punchline: "p"},
			wantFields: []string{"name"},
		},
		{
			name:       "whitespace-only counts as missing",
			joke:       &Joke{Setup: "  ", Punchline: "\t", Author: "a"},
			wantFields: []string{"setup", "punchline"},
		},
		{
			name:       "everything missing",
			joke:       &Joke{},
			wantFields: []string{"setup", "punchline", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.joke)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if verr.Fields[i] != f {
					t.Errorf("Fields[%d] = %q, want %q", i, verr.Fields[i], f)
				}
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(&ValidationError{Fields: []string{"setup"}}) {
		t.Error("IsValidationError(*ValidationError) = false, want true")
	}
	if IsValidationError(ErrJokeNotFound) {
		t.Error("IsValidationError(ErrJokeNotFound) = true, want false")
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError(nil) = true, want false")
	}
}
