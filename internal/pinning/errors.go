package pinning

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by a provider whose credential is missing.
var ErrNotConfigured = errors.New("provider credential not configured")

// ProviderError wraps any failure of a remote pinning provider. The fallback
// chain absorbs it and advances to the next strategy.
type ProviderError struct {
	Err        error
	Provider   string
	StatusCode int // zero when no HTTP response was received
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upload failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s upload failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError.
func NewProviderError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Err:        err,
		Provider:   provider,
		StatusCode: statusCode,
	}
}
