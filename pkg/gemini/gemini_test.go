package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"

	"calendar-converter/pkg/gemini"
)

type wirePart struct {
	Text       string `json:"text"`
	InlineData *struct {
		MIMEType string `json:"mime_type"`
		Data     string `json:"data"`
	} `json:"inline_data"`
}

type wireRequest struct {
	Contents []struct {
		Role  string     `json:"role"`
		Parts []wirePart `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		Temperature      float64 `json:"temperature"`
		ResponseMIMEType string  `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want default %q", client.Model(), gemini.DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	var captured wireRequest
	var capturedPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		capturedPath = r.URL.Path

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if captured.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {"parts": [{"text": "mocked response string"}], "role": "model"},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Text prompt", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages:         []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}}},
			Temperature:      0.1,
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if capturedPath != "/models/gemini-test:generateContent" {
			t.Errorf("unexpected path %q", capturedPath)
		}
		if resp.Content.Parts[0].Text != "mocked response string" {
			t.Errorf("unexpected content: %q", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
		if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("expected generationConfig with responseMimeType, got %+v", captured.GenerationConfig)
		}
	})

	t.Run("Inline image", func(t *testing.T) {
		img := []byte{0x89, 'P', 'N', 'G'}
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{
				Role: "user",
				Parts: []gemini.Part{
					{Text: "describe"},
					{InlineData: &gemini.Blob{MIMEType: "image/png", Data: img}},
				},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parts := captured.Contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			t.Fatalf("expected text + inline_data parts, got %+v", parts)
		}
		if parts[1].InlineData.MIMEType != "image/png" {
			t.Errorf("mime_type = %q", parts[1].InlineData.MIMEType)
		}
		if parts[1].InlineData.Data != base64.StdEncoding.EncodeToString(img) {
			t.Errorf("data not base64 encoded: %q", parts[1].InlineData.Data)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("expected status code in error, got %v", err)
		}
	})
}

func TestListModels(t *testing.T) {
	var pageSizes []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/models" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		pageSizes = append(pageSizes, r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			w.Write([]byte(`{
				"models": [
					{"name": "models/gemini-2.5-flash", "displayName": "Gemini 2.5 Flash", "version": "001",
					 "supportedGenerationMethods": ["generateContent", "countTokens"]}
				],
				"nextPageToken": "page-2"
			}`))
			return
		}
		w.Write([]byte(`{
			"models": [
				{"name": "models/embedding-001", "displayName": "Embedding", "version": "001",
				 "supportedGenerationMethods": ["embedContent"]}
			]
		}`))
	}))
	defer ts.Close()

	models, err := gemini.ListModels(context.Background(), gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pageSizes) != 2 || pageSizes[0] != "100" {
		t.Errorf("expected two paged requests with pageSize=100, got %v", pageSizes)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].Name != "embedding-001" || models[1].Name != "gemini-2.5-flash" {
		t.Errorf("expected sorted, prefix-stripped names, got %q, %q", models[0].Name, models[1].Name)
	}
	if models[0].SupportsGenerate() || !models[1].SupportsGenerate() {
		t.Errorf("SupportsGenerate mismatch: %+v", models)
	}

	if _, err := gemini.ListModels(context.Background(), gemini.Config{}); err == nil {
		t.Errorf("expected error for empty API key")
	}
}

func TestListModels_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "API key not valid"}}`))
	}))
	defer ts.Close()

	_, err := gemini.ListModels(context.Background(), gemini.Config{APIKey: "bad", APIURL: ts.URL})
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *googleapi.Error, got %v", err)
	}
	if apiErr.Code != http.StatusForbidden || apiErr.Message != "API key not valid" {
		t.Errorf("unexpected api error: code=%d message=%q", apiErr.Code, apiErr.Message)
	}
}
