package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calendar-converter/pkg/gemini"
)

func sampleModels() []gemini.ModelInfo {
	return []gemini.ModelInfo{
		{Name: "embedding-001", DisplayName: "Embedding", Methods: []string{"embedContent"}},
		{Name: "gemini-1.5-flash", DisplayName: "Gemini 1.5 Flash", Version: "001", Methods: []string{"generateContent", "countTokens"}},
		{Name: "gemini-2.5-pro", DisplayName: "Gemini 2.5 Pro", Methods: []string{"countTokens"}},
	}
}

func TestAvailability(t *testing.T) {
	got := Availability(sampleModels())

	if len(got) != len(Recommended) {
		t.Fatalf("expected an entry per recommended model, got %d", len(got))
	}
	if !got["gemini-1.5-flash"] {
		t.Error("gemini-1.5-flash should be available")
	}
	if got["gemini-2.5-pro"] {
		t.Error("models without generateContent are not usable")
	}
	if got["gemini-pro"] {
		t.Error("missing models are not available")
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, sampleModels(), false)
	out := buf.String()

	if !strings.Contains(out, "Found 1 models") {
		t.Errorf("only generateContent models should be listed:\n%s", out)
	}
	if strings.Contains(out, "[*] embedding-001") {
		t.Errorf("embedding model should be hidden without --all")
	}
	if !strings.Contains(out, "[OK] gemini-1.5-flash - AVAILABLE") || !strings.Contains(out, "[NO] gemini-pro - NOT AVAILABLE") {
		t.Errorf("unexpected availability section:\n%s", out)
	}

	buf.Reset()
	Report(&buf, sampleModels(), true)
	if !strings.Contains(buf.String(), "[*] embedding-001") {
		t.Errorf("--all should list every model")
	}
}

func TestModelsCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" || r.URL.Query().Get("key") != "cli-key" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models": [{"name": "models/gemini-2.5-flash", "displayName": "Gemini 2.5 Flash",
			"supportedGenerationMethods": ["generateContent"]}]}`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{"--api-key", "cli-key", "--endpoint", ts.URL + "/"})
	defer func() {
		apiKey, endpoint, showAll = "", "", false
	}()

	if err := Cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("models command failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Found 1 models", "[OK] gemini-2.5-flash - AVAILABLE", "[NO] gemini-pro - NOT AVAILABLE"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
