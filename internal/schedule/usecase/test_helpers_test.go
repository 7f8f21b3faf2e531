package usecase

import (
	"context"
	"errors"

	"calendar-converter/internal/extraction"
	"calendar-converter/internal/model"
	"calendar-converter/pkg/datemath"
	"calendar-converter/pkg/llmprovider"
	pkgLog "calendar-converter/pkg/log"
)

// stubEngine records the requests it receives and replies with a canned body.
type stubEngine struct {
	reply    string
	err      error
	requests []*llmprovider.Request
}

func (s *stubEngine) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: s.reply}}},
	}, nil
}

func (s *stubEngine) Name() string  { return "stub" }
func (s *stubEngine) Model() string { return "stub-model" }

func (s *stubEngine) lastHasImage() bool {
	if len(s.requests) == 0 {
		return false
	}
	for _, p := range s.requests[len(s.requests)-1].Messages[0].Parts {
		if p.InlineData != nil {
			return true
		}
	}
	return false
}

type stubSerializer struct {
	data []byte
	err  error
	got  []model.CalendarEvent
}

func (s *stubSerializer) Encode(events []model.CalendarEvent) ([]byte, error) {
	s.got = events
	return s.data, s.err
}

var errBoom = errors.New("boom")

func newTestUseCase(engine *stubEngine, ser *stubSerializer) *implUseCase {
	l := pkgLog.NewNop()
	ex := extraction.New(l, engine, extraction.Config{MaxEvents: 50})
	if ser == nil {
		ser = &stubSerializer{}
	}
	return New(l, ex, datemath.NewParser(), ser).(*implUseCase)
}
