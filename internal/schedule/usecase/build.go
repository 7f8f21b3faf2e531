package usecase

import (
	"fmt"
	"strings"
	"time"

	"calendar-converter/internal/extraction"
	"calendar-converter/internal/model"
	"calendar-converter/pkg/datemath"
)

const (
	DefaultTitle    = "Untitled Event"
	DefaultDuration = 60 * time.Minute
)

// buildEvent turns one raw engine event into a fully defaulted record.
// It only fails when start_time is missing or unusable, or when end_time
// is present but unusable.
func buildEvent(parser *datemath.Parser, raw extraction.RawEvent) (model.CalendarEvent, error) {
	start, err := parser.Parse(raw.StartTime)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("start_time: %w", err)
	}

	end := start.Add(DefaultDuration)
	if strings.TrimSpace(raw.EndTime) != "" {
		if end, err = parser.Parse(raw.EndTime); err != nil {
			return model.CalendarEvent{}, fmt.Errorf("end_time: %w", err)
		}
	}

	title := raw.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	attendees := make([]string, len(raw.Attendees))
	copy(attendees, raw.Attendees)

	return model.CalendarEvent{
		Title:       title,
		Start:       start,
		End:         end,
		Description: raw.Description,
		Location:    raw.Location,
		Attendees:   attendees,
	}, nil
}

func (uc *implUseCase) buildEvents(raws []extraction.RawEvent) ([]model.CalendarEvent, error) {
	events := make([]model.CalendarEvent, 0, len(raws))
	for i, raw := range raws {
		ev, err := buildEvent(uc.dateMath, raw)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i, raw.Title, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
