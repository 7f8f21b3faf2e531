package config

import (
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "empty",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
				{Name: "qwen", Enabled: true, Priority: 2},
			}},
		},
		{
			name: "missing name",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
				{Name: "qwen", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "non-positive priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 0},
			}},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: false, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "disabled provider ignores priority clash",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
				{Name: "qwen", Enabled: false, Priority: 1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CALCONV_TEST_KEY", "secret-value")

	if got := expandEnvVar("${CALCONV_TEST_KEY}"); got != "secret-value" {
		t.Errorf("expandEnvVar() = %q, want secret-value", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expandEnvVar() = %q, want literal", got)
	}
	if got := expandEnvVar("${CALCONV_TEST_MISSING}"); got != "" {
		t.Errorf("expandEnvVar() = %q, want empty for unset var", got)
	}
}

func TestGetFromMap(t *testing.T) {
	m := map[string]interface{}{
		"s": "text",
		"b": true,
		"i": 3,
		"f": float64(7),
	}

	if getStringFromMap(m, "s") != "text" || getStringFromMap(m, "i") != "" {
		t.Errorf("getStringFromMap mismatch")
	}
	if !getBoolFromMap(m, "b") || getBoolFromMap(m, "missing") {
		t.Errorf("getBoolFromMap mismatch")
	}
	if getIntFromMap(m, "i") != 3 || getIntFromMap(m, "f") != 7 || getIntFromMap(m, "s") != 0 {
		t.Errorf("getIntFromMap mismatch")
	}
}
