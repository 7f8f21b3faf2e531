package http

import (
	"calendar-converter/internal/model"
	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/response"
)

// --- Request DTOs ---

type convertTextReq struct {
	Text string `json:"text" binding:"required"`
}

func (r convertTextReq) toInput() schedule.ConvertTextInput {
	return schedule.ConvertTextInput{Text: r.Text}
}

type convertFileReq struct {
	Filename string
	Data     []byte
}

func (r convertFileReq) toInput() schedule.ConvertFileInput {
	return schedule.ConvertFileInput{Data: r.Data, Filename: r.Filename}
}

const (
	formatICS  = "ics"
	formatJSON = "json"
)

// --- Response DTOs ---

type eventResp struct {
	Title       string            `json:"title"`
	Start       response.DateTime `json:"start" swaggertype:"string" example:"2024-03-15 14:00"`
	End         response.DateTime `json:"end" swaggertype:"string" example:"2024-03-15 15:00"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Attendees   []string          `json:"attendees"`
}

type convertResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newConvertResp(out schedule.ConvertOutput) convertResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return convertResp{Events: events, Count: len(events)}
}

func newEventResp(ev model.CalendarEvent) eventResp {
	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return eventResp{
		Title:       ev.Title,
		Start:       response.DateTime(ev.Start),
		End:         response.DateTime(ev.End),
		Description: ev.Description,
		Location:    ev.Location,
		Attendees:   attendees,
	}
}
