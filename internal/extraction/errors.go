package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyEvents is wrapped in a MalformedResponseError when a response exceeds Config.MaxEvents.
	ErrTooManyEvents = errors.New("too many events in engine response")

	// ErrInvalidRequest is returned for requests that cannot be dispatched.
	ErrInvalidRequest = errors.New("invalid extraction request")
)

const snippetLimit = 200

// MalformedResponseError means the engine output could not be recovered as
// a JSON object of the expected shape.
type MalformedResponseError struct {
	Snippet string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("extraction: malformed engine response: %v (response: %q)", e.Err, e.Snippet)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// EngineError wraps any transport or engine-side failure. It is never retried here.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("extraction: engine call failed: %v", e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func malformed(raw string, err error) *MalformedResponseError {
	return &MalformedResponseError{Snippet: snippet(raw), Err: err}
}

func snippet(raw string) string {
	r := []rune(raw)
	if len(r) <= snippetLimit {
		return raw
	}
	return string(r[:snippetLimit]) + "..."
}
