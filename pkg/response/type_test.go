package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-converter/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01 15:30"` {
		t.Errorf("unexpected JSON %s", b)
	}
}

func TestDateTimeIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tm := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)

	b, _ := json.Marshal(response.DateTime(tm))
	if string(b) != `"2024-05-01 08:00"` {
		t.Errorf("wall clock must be kept as is, got %s", b)
	}
}
