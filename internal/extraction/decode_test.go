package extraction

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeEvents(t *testing.T) {
	payload := `{"events": [
		{"title": "Math 101", "description": "Lecture", "start_time": "2024-09-02 10:00",
		 "end_time": "2024-09-02 11:30", "location": 204, "attendees": ["Dr. Smith", null, "  "]},
		{"title": null, "start_time": " 09/03/2024 "},
		{"attendees": "bob@example.com"}
	]}`

	got, err := decodeEvents(payload, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []RawEvent{
		{
			Title:       "Math 101",
			Description: "Lecture",
			StartTime:   "2024-09-02 10:00",
			EndTime:     "2024-09-02 11:30",
			Location:    "204",
			Attendees:   []string{"Dr. Smith"},
		},
		{StartTime: "09/03/2024"},
		{Attendees: []string{"bob@example.com"}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodeEvents() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestDecodeEvents_EmptyOutcomes(t *testing.T) {
	for _, payload := range []string{`{"events": []}`, `{}`, `{"events": null}`, `{"other": 1}`} {
		t.Run(payload, func(t *testing.T) {
			got, err := decodeEvents(payload, 10)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", got)
			}
		})
	}
}

func TestDecodeEvents_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `events: none`},
		{name: "truncated", payload: `{"events": [{"title": "A"`},
		{name: "top-level array", payload: `[{"title": "A"}]`},
		{name: "events not array", payload: `{"events": {"title": "A"}}`},
		{name: "event not object", payload: `{"events": ["A"]}`},
		{name: "title is object", payload: `{"events": [{"title": {"x": 1}}]}`},
		{name: "start_time is number", payload: `{"events": [{"start_time": 20240315}]}`},
		{name: "attendees is object", payload: `{"events": [{"attendees": {"a": 1}}]}`},
		{name: "attendee entry is array", payload: `{"events": [{"attendees": [["a"]]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeEvents(tt.payload, 0); err == nil {
				t.Errorf("expected error for %s", tt.payload)
			}
		})
	}
}

func TestDecodeEvents_MaxEvents(t *testing.T) {
	payload := `{"events": [{}, {}, {}]}`

	if _, err := decodeEvents(payload, 3); err != nil {
		t.Fatalf("unexpected error at the bound: %v", err)
	}

	_, err := decodeEvents(payload, 2)
	if !errors.Is(err, ErrTooManyEvents) {
		t.Errorf("expected ErrTooManyEvents, got %v", err)
	}
}
