package model

import "time"

// CalendarEvent is a validated, fully defaulted event ready for serialization.
//
// Start and End are naive wall-clock timestamps carried in time.UTC; they hold
// no timezone information.
type CalendarEvent struct {
	Title       string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
	Attendees   []string
}

// Duration returns End - Start. It may be negative when the engine supplied
// an end before the start; such records are passed through untouched.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
