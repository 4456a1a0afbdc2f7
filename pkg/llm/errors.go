package llm

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned before any network attempt when the
// provider was built without an API key.
var ErrMissingCredential = errors.New("generation API key is missing")

// GenerationError wraps a failed or timed-out remote call.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(provider string, err error) *GenerationError {
	return &GenerationError{Provider: provider, Err: err}
}

// IsGenerationError reports whether err is, or wraps, a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
