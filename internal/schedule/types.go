package schedule

import "calendar-converter/internal/model"

// ConvertTextInput is the input for text conversion.
type ConvertTextInput struct {
	Text string
}

// ConvertFileInput is the input for file and image conversion.
type ConvertFileInput struct {
	Data     []byte
	Filename string
}

// ConvertOutput holds the events in the order the engine listed them.
type ConvertOutput struct {
	Events []model.CalendarEvent
}

// RenderOutput is a ready-to-serve calendar file.
type RenderOutput struct {
	Data        []byte
	Filename    string
	ContentType string
}
