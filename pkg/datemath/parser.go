package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultHour and DefaultMinute apply when the input carries a date but no time.
	DefaultHour   = 9
	DefaultMinute = 0

	// Layout is the canonical rendering of a naive timestamp.
	Layout = "2006-01-02 15:04"
)

// Accepted layouts, in priority order. First match wins.
var (
	isoPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:\s+(\d{1,2}):(\d{2}))?$`)
	usPattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2}))?$`)
)

// Parser converts the date strings emitted by the extraction engine into naive timestamps.
//
// The returned time.Time always uses time.UTC as a carrier for the wall clock; no
// timezone is parsed or applied.
type Parser struct {
	defaultHour   int
	defaultMinute int
}

// NewParser creates a parser using the 09:00 default for date-only input.
func NewParser() *Parser {
	return &Parser{defaultHour: DefaultHour, defaultMinute: DefaultMinute}
}

// Parse accepts "YYYY-MM-DD[ HH:MM]" or "MM/DD/YYYY[ HH:MM]".
func (p *Parser) Parse(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return p.build(dateStr, m[1], m[2], m[3], m[4], m[5])
	}

	if m := usPattern.FindStringSubmatch(s); m != nil {
		return p.build(dateStr, m[3], m[1], m[2], m[4], m[5])
	}

	return time.Time{}, &UnparsableDateError{Input: dateStr}
}

func (p *Parser) build(input, year, month, day, hour, minute string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	h, mi := p.defaultHour, p.defaultMinute
	if hour != "" {
		h, _ = strconv.Atoi(hour)
		mi, _ = strconv.Atoi(minute)
	}

	switch {
	case mo < 1 || mo > 12:
		return time.Time{}, &InvalidDateError{Input: input, Reason: fmt.Sprintf("month %d out of range", mo)}
	case h > 23:
		return time.Time{}, &InvalidDateError{Input: input, Reason: fmt.Sprintf("hour %d out of range", h)}
	case mi > 59:
		return time.Time{}, &InvalidDateError{Input: input, Reason: fmt.Sprintf("minute %d out of range", mi)}
	}

	t := time.Date(y, time.Month(mo), d, h, mi, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 1); reject instead.
	if t.Day() != d || int(t.Month()) != mo {
		return time.Time{}, &InvalidDateError{Input: input, Reason: fmt.Sprintf("day %d out of range for %d-%02d", d, y, mo)}
	}

	return t, nil
}

// Format renders a naive timestamp in the canonical layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}
