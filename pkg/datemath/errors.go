package datemath

import "fmt"

// UnparsableDateError is returned when the input matches none of the accepted layouts.
type UnparsableDateError struct {
	Input string
}

func (e *UnparsableDateError) Error() string {
	return fmt.Sprintf("datemath: unparsable date %q", e.Input)
}

// InvalidDateError is returned when the input has an accepted layout but the
// fields do not form a real calendar date/time (e.g. month 13, Feb 30, 25:00).
type InvalidDateError struct {
	Input  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("datemath: invalid date %q: %s", e.Input, e.Reason)
}
