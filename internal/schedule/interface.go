package schedule

import (
	"context"

	"calendar-converter/internal/model"
)

// UseCase converts schedule descriptions into calendar events.
type UseCase interface {
	// ConvertText extracts events from free text.
	ConvertText(ctx context.Context, input ConvertTextInput) (ConvertOutput, error)

	// ConvertFile routes by filename extension: images go through ConvertImage, everything else is decoded as UTF-8 text.
	ConvertFile(ctx context.Context, input ConvertFileInput) (ConvertOutput, error)

	// ConvertImage extracts events from a picture of a schedule.
	ConvertImage(ctx context.Context, input ConvertFileInput) (ConvertOutput, error)

	// Render serializes events into an .ics calendar file.
	Render(ctx context.Context, events []model.CalendarEvent) (RenderOutput, error)
}

// Serializer renders validated events into calendar file bytes.
type Serializer interface {
	Encode(events []model.CalendarEvent) ([]byte, error)
}
