package llmprovider_test

import (
	"testing"
	"time"

	"calendar-converter/config"
	"calendar-converter/pkg/llmprovider"
)

func TestNewManagerConfig(t *testing.T) {
	got, err := llmprovider.NewManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "2s",
		MaxTotalTimeout: "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FallbackEnabled || got.RetryAttempts != 3 || got.RetryDelay != 2*time.Second || got.MaxTotalTimeout != 0 {
		t.Errorf("unexpected config %+v", got)
	}

	if _, err := llmprovider.NewManagerConfig(&config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Errorf("expected error for invalid duration")
	}

	def, err := llmprovider.NewManagerConfig(nil)
	if err != nil || def.RetryAttempts != 1 || def.FallbackEnabled {
		t.Errorf("nil config should yield a single attempt without fallback, got %+v (%v)", def, err)
	}
}
