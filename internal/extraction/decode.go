package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// decodeEvents parses the repaired payload and validates it field by field.
// The payload is never unmarshalled straight into RawEvent: every value is
// checked against the shape we expect first.
func decodeEvents(payload string, maxEvents int) ([]RawEvent, error) {
	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", typeName(doc))
	}

	rawList, present := root["events"]
	if !present || rawList == nil {
		return []RawEvent{}, nil
	}

	list, ok := rawList.([]any)
	if !ok {
		return nil, fmt.Errorf(`"events" must be an array, got %s`, typeName(rawList))
	}

	if maxEvents > 0 && len(list) > maxEvents {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyEvents, len(list), maxEvents)
	}

	events := make([]RawEvent, 0, len(list))
	for i, item := range list {
		ev, err := decodeEvent(item)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

func decodeEvent(item any) (RawEvent, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return RawEvent{}, fmt.Errorf("expected an object, got %s", typeName(item))
	}

	var (
		ev  RawEvent
		err error
	)

	if ev.Title, err = textField(obj, "title"); err != nil {
		return RawEvent{}, err
	}
	if ev.Description, err = textField(obj, "description"); err != nil {
		return RawEvent{}, err
	}
	if ev.Location, err = textField(obj, "location"); err != nil {
		return RawEvent{}, err
	}
	if ev.StartTime, err = timeField(obj, "start_time"); err != nil {
		return RawEvent{}, err
	}
	if ev.EndTime, err = timeField(obj, "end_time"); err != nil {
		return RawEvent{}, err
	}
	if ev.Attendees, err = attendeesField(obj, "attendees"); err != nil {
		return RawEvent{}, err
	}

	return ev, nil
}

// textField accepts strings and scalar values (a room number is often a bare number).
func textField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := scalarString(v)
	if !ok {
		return "", fmt.Errorf("%q: expected a string, got %s", key, typeName(v))
	}
	return strings.TrimSpace(s), nil
}

// timeField only accepts strings; the date parser decides whether they are usable.
func timeField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q: expected a string, got %s", key, typeName(v))
	}
	return strings.TrimSpace(s), nil
}

func attendeesField(obj map[string]any, key string) ([]string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}

	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, entry := range t {
			if entry == nil {
				continue
			}
			s, ok := scalarString(entry)
			if !ok {
				return nil, fmt.Errorf("%q[%d]: expected a string, got %s", key, i, typeName(entry))
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%q: expected an array of strings, got %s", key, typeName(v))
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
