package usecase

import (
	"testing"

	"calendar-converter/config"
	pkgLog "calendar-converter/pkg/log"
)

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "test-key"},
			},
			RetryAttempts: 1,
		},
		Extraction: config.ExtractionConfig{MaxEvents: 10},
	}

	uc, err := NewFromConfig(pkgLog.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc == nil {
		t.Fatal("expected a usecase")
	}
}

func TestNewFromConfig_NoProviders(t *testing.T) {
	if _, err := NewFromConfig(pkgLog.NewNop(), &config.Config{}); err == nil {
		t.Error("expected an error without providers")
	}
}
