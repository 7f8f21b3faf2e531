package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("reasoning engine: every provider in the chain failed")
	ErrNoProvidersConfigured = errors.New("reasoning engine: no providers configured")

	// ErrInvalidRequest is returned for a nil request or one without messages.
	ErrInvalidRequest = errors.New("reasoning engine: request has no messages")
)

// ProviderError attributes a failed engine call to the provider and model that made it.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("provider %s (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
