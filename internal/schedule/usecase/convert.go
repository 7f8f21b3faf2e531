package usecase

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"calendar-converter/internal/extraction"
	"calendar-converter/internal/model"
	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/icalendar"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ConvertText extracts events from free text.
// Blank text has nothing to schedule and yields no events without an engine call.
func (uc *implUseCase) ConvertText(ctx context.Context, input schedule.ConvertTextInput) (schedule.ConvertOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		uc.l.Infof(ctx, "ConvertText: blank input, no events")
		return schedule.ConvertOutput{Events: []model.CalendarEvent{}}, nil
	}

	uc.l.Infof(ctx, "ConvertText: %d bytes", len(input.Text))
	return uc.convert(ctx, extraction.NewTextRequest(input.Text))
}

// ConvertFile dispatches on the filename extension.
func (uc *implUseCase) ConvertFile(ctx context.Context, input schedule.ConvertFileInput) (schedule.ConvertOutput, error) {
	if isImage(input.Filename) {
		return uc.ConvertImage(ctx, input)
	}

	data := bytes.TrimPrefix(input.Data, utf8BOM)
	if !utf8.Valid(data) {
		uc.l.Warnf(ctx, "ConvertFile: %q is not valid UTF-8", input.Filename)
		return schedule.ConvertOutput{}, &schedule.UnsupportedInputError{
			Filename: input.Filename,
			Reason:   "content is not valid UTF-8 text",
		}
	}

	uc.l.Infof(ctx, "ConvertFile: %q routed to text path", input.Filename)
	return uc.ConvertText(ctx, schedule.ConvertTextInput{Text: string(data)})
}

// ConvertImage extracts events from an image.
func (uc *implUseCase) ConvertImage(ctx context.Context, input schedule.ConvertFileInput) (schedule.ConvertOutput, error) {
	if len(input.Data) == 0 {
		return schedule.ConvertOutput{}, schedule.ErrEmptyInput
	}

	mimeType := imageMIME(input.Filename)
	uc.l.Infof(ctx, "ConvertImage: %q (%s, %d bytes)", input.Filename, mimeType, len(input.Data))
	return uc.convert(ctx, extraction.NewImageRequest(input.Data, mimeType))
}

func (uc *implUseCase) convert(ctx context.Context, req extraction.Request) (schedule.ConvertOutput, error) {
	raws, err := uc.extractor.Extract(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "extractor.Extract: %v", err)
		return schedule.ConvertOutput{}, err
	}

	events, err := uc.buildEvents(raws)
	if err != nil {
		uc.l.Errorf(ctx, "buildEvents: %v", err)
		return schedule.ConvertOutput{}, err
	}

	uc.l.Infof(ctx, "convert: %s request produced %d events", req.Kind, len(events))
	return schedule.ConvertOutput{Events: events}, nil
}

// Render serializes events into an .ics file.
func (uc *implUseCase) Render(ctx context.Context, events []model.CalendarEvent) (schedule.RenderOutput, error) {
	data, err := uc.serializer.Encode(events)
	if err != nil {
		uc.l.Errorf(ctx, "serializer.Encode: %v", err)
		return schedule.RenderOutput{}, &schedule.SerializationError{Err: err}
	}

	return schedule.RenderOutput{
		Data:        data,
		Filename:    icalendar.Filename,
		ContentType: icalendar.ContentType,
	}, nil
}
