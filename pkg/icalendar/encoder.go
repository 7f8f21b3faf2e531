package icalendar

import (
	"bytes"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"calendar-converter/internal/model"
)

// uidNamespace scopes the name-based UIDs generated for events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("calendar-converter/vevent"))

// Encoder renders calendar events as an RFC 5545 VCALENDAR.
// The zero value is usable.
type Encoder struct {
	ProductID string
	// Now stamps DTSTAMP. Defaults to time.Now.
	Now func() time.Time
}

// NewEncoder returns an Encoder with the given product id.
func NewEncoder(productID string) *Encoder {
	return &Encoder{ProductID: productID}
}

// Encode serializes events in order. An empty slice yields a calendar with no VEVENTs.
func (e *Encoder) Encode(events []model.CalendarEvent) ([]byte, error) {
	if len(events) == 0 {
		return e.encodeEmpty()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, e.productID())
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	stamp := e.now().UTC()
	for i, ev := range events {
		cal.Children = append(cal.Children, toVEvent(i, ev, stamp))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeEmpty writes a VCALENDAR with header properties only.
// go-ical refuses to encode a calendar without components.
func (e *Encoder) encodeEmpty() ([]byte, error) {
	cal := ics.NewCalendarFor("calendar-converter")
	cal.SetProductId(e.productID())
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf, ics.WithNewLineWindows); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Encoder) productID() string {
	if e == nil || e.ProductID == "" {
		return DefaultProductID
	}
	return e.ProductID
}

func (e *Encoder) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func toVEvent(index int, ev model.CalendarEvent, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, EventUID(index, ev))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.Set(floating(ical.PropDateTimeStart, ev.Start))
	ve.Props.Set(floating(ical.PropDateTimeEnd, ev.End))
	ve.Props.SetText(ical.PropSummary, ev.Title)

	if ev.Description != "" {
		ve.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		ve.Props.SetText(ical.PropLocation, ev.Location)
	}
	for _, a := range ev.Attendees {
		ve.Props.Add(attendee(a))
	}
	return ve
}

// floating writes t as a local date-time without TZID or UTC marker.
// SetDateTime would append "Z" for UTC values, which would turn naive
// wall-clock times into absolute instants.
func floating(name string, t time.Time) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = t.Format(floatingLayout)
	return p
}

func attendee(value string) *ical.Prop {
	p := ical.NewProp(ical.PropAttendee)
	value = strings.TrimSpace(value)

	if addr, err := mail.ParseAddress(value); err == nil {
		if name := paramValue(addr.Name); name != "" {
			p.Params.Set(ical.ParamCommonName, name)
		}
		p.Value = "mailto:" + addr.Address
		return p
	}

	p.Params.Set(ical.ParamCommonName, paramValue(value))
	p.Value = noMailAddress
	return p
}

// paramValue makes s safe as a parameter value: DQUOTE is not allowed
// even inside a quoted value, and control characters would break the line.
func paramValue(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

// EventUID derives a stable UID from the event position and identity,
// so rendering the same events twice yields the same UIDs.
func EventUID(index int, ev model.CalendarEvent) string {
	name := fmt.Sprintf("%d|%s|%s", index, ev.Title, ev.Start.Format(floatingLayout))
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@calendar-converter"
}
