package usecase

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"calendar-converter/internal/extraction"
	"calendar-converter/pkg/datemath"
)

func TestBuildEvent_Defaults(t *testing.T) {
	parser := datemath.NewParser()

	ev, err := buildEvent(parser, extraction.RawEvent{StartTime: "2024-03-15 14:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ev.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", ev.Title, DefaultTitle)
	}
	wantEnd := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)
	if !ev.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", ev.End, wantEnd)
	}
	if ev.End.Sub(ev.Start) != 60*time.Minute {
		t.Errorf("default duration = %v", ev.End.Sub(ev.Start))
	}
	if ev.Description != "" || ev.Location != "" {
		t.Errorf("expected empty description/location, got %q/%q", ev.Description, ev.Location)
	}
	if ev.Attendees == nil || len(ev.Attendees) != 0 {
		t.Errorf("expected empty attendee list, got %#v", ev.Attendees)
	}
}

func TestBuildEvent_AllFields(t *testing.T) {
	parser := datemath.NewParser()

	ev, err := buildEvent(parser, extraction.RawEvent{
		Title:       "Standup",
		Description: "Daily sync",
		StartTime:   "03/15/2024 09:30",
		EndTime:     "2024-03-15 09:45",
		Location:    "Room 3",
		Attendees:   []string{"ann@example.com", "Bob"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ev.Title != "Standup" || ev.Description != "Daily sync" || ev.Location != "Room 3" {
		t.Errorf("unexpected text fields: %+v", ev)
	}
	if ev.Duration() != 15*time.Minute {
		t.Errorf("Duration() = %v", ev.Duration())
	}
	if !reflect.DeepEqual(ev.Attendees, []string{"ann@example.com", "Bob"}) {
		t.Errorf("Attendees = %v", ev.Attendees)
	}
}

func TestBuildEvent_WhitespaceTitle(t *testing.T) {
	ev, err := buildEvent(datemath.NewParser(), extraction.RawEvent{Title: "   ", StartTime: "2024-03-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Title != DefaultTitle {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.Start.Hour() != 9 {
		t.Errorf("date-only start should default to 09:00, got %v", ev.Start)
	}
}

func TestBuildEvent_EndBeforeStartPassesThrough(t *testing.T) {
	ev, err := buildEvent(datemath.NewParser(), extraction.RawEvent{
		StartTime: "2024-03-15 14:00",
		EndTime:   "2024-03-15 13:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Duration() != -time.Hour {
		t.Errorf("end must be kept as supplied, got duration %v", ev.Duration())
	}
}

func TestBuildEvent_Errors(t *testing.T) {
	parser := datemath.NewParser()

	tests := []struct {
		name    string
		raw     extraction.RawEvent
		checkFn func(error) bool
	}{
		{
			name: "missing start",
			raw:  extraction.RawEvent{Title: "x"},
			checkFn: func(err error) bool {
				var e *datemath.UnparsableDateError
				return errors.As(err, &e)
			},
		},
		{
			name: "unparsable start",
			raw:  extraction.RawEvent{StartTime: "next tuesday"},
			checkFn: func(err error) bool {
				var e *datemath.UnparsableDateError
				return errors.As(err, &e)
			},
		},
		{
			name: "invalid start",
			raw:  extraction.RawEvent{StartTime: "2024-02-30"},
			checkFn: func(err error) bool {
				var e *datemath.InvalidDateError
				return errors.As(err, &e)
			},
		},
		{
			name: "unparsable end",
			raw:  extraction.RawEvent{StartTime: "2024-03-15", EndTime: "noon"},
			checkFn: func(err error) bool {
				var e *datemath.UnparsableDateError
				return errors.As(err, &e) && e.Input == "noon"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildEvent(parser, tt.raw)
			if err == nil || !tt.checkFn(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildEvent_Idempotent(t *testing.T) {
	parser := datemath.NewParser()
	raw := extraction.RawEvent{
		Title:     "Review",
		StartTime: "2024-06-01 10:00",
		Attendees: []string{"a", "b"},
	}

	a, errA := buildEvent(parser, raw)
	b, errB := buildEvent(parser, raw)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("build is not idempotent:\n%+v\n%+v", a, b)
	}

	a.Attendees[0] = "changed"
	if raw.Attendees[0] != "a" {
		t.Errorf("built record must not alias the raw attendee slice")
	}
}
