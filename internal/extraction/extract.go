package extraction

import (
	"context"
	"fmt"

	"calendar-converter/pkg/llmprovider"
)

const roleUser = "user"

// Extract builds the prompt, calls the engine once and repairs its output.
func (e *implExtractor) Extract(ctx context.Context, req Request) ([]RawEvent, error) {
	llmReq, err := e.buildRequest(req)
	if err != nil {
		return nil, err
	}

	e.l.Infof(ctx, "Extract: kind=%s model=%s", req.Kind, e.engine.Model())

	resp, err := e.engine.GenerateContent(ctx, llmReq)
	if err != nil {
		return nil, &EngineError{Err: err}
	}

	raw := resp.Text()
	e.l.Debugf(ctx, "Extract: raw engine response: %s", raw)

	payload := stripCodeFence(raw)
	events, err := decodeEvents(payload, e.cfg.MaxEvents)
	if err != nil {
		e.l.Errorf(ctx, "Extract: failed to decode engine response. Raw=%q Cleaned=%q err=%v", snippet(raw), snippet(payload), err)
		return nil, malformed(raw, err)
	}

	e.l.Infof(ctx, "Extract: engine listed %d events", len(events))
	return events, nil
}

func (e *implExtractor) buildRequest(req Request) (*llmprovider.Request, error) {
	var parts []llmprovider.Part

	switch req.Kind {
	case KindText:
		parts = []llmprovider.Part{{Text: BuildTextPrompt(req.Content)}}
	case KindImage:
		if len(req.Data) == 0 {
			return nil, fmt.Errorf("%w: empty image payload", ErrInvalidRequest)
		}
		parts = []llmprovider.Part{
			{Text: ImagePrompt},
			{InlineData: &llmprovider.Blob{MIMEType: req.MIMEType, Data: req.Data}},
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidRequest, req.Kind)
	}

	return &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: roleUser, Parts: parts}},
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxOutputTokens,
		JSONOutput:  true,
	}, nil
}
