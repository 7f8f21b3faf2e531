package schedule

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the schedule package.
var (
	ErrEmptyInput = errors.New("input is empty")
)

// UnsupportedInputError is returned when a text payload cannot be decoded.
type UnsupportedInputError struct {
	Filename string
	Reason   string
}

func (e *UnsupportedInputError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("unsupported input: %s", e.Reason)
	}
	return fmt.Sprintf("unsupported input %q: %s", e.Filename, e.Reason)
}

// SerializationError wraps a calendar encoder failure.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("calendar serialization failed: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
