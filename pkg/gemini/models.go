package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"google.golang.org/api/googleapi"
)

const listPageSize = 100

// ModelInfo describes a model exposed by the Generative Language API.
type ModelInfo struct {
	Name        string // short name, without the "models/" prefix
	DisplayName string
	Version     string
	Methods     []string
}

// SupportsGenerate reports whether the model can serve generateContent calls.
func (m ModelInfo) SupportsGenerate() bool {
	for _, method := range m.Methods {
		if method == MethodGenerateContent {
			return true
		}
	}
	return false
}

type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		DisplayName                string   `json:"displayName"`
		Version                    string   `json:"version"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
	NextPageToken string `json:"nextPageToken"`
}

// ListModels returns every model visible to cfg.APIKey, sorted by name.
// cfg.Model is ignored; cfg.APIURL overrides the endpoint.
func ListModels(ctx context.Context, cfg Config) ([]ModelInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := newGeminiImpl(cfg)

	var models []ModelInfo
	pageToken := ""
	for {
		page, err := g.listModelsPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, m := range page.Models {
			models = append(models, ModelInfo{
				Name:        strings.TrimPrefix(m.Name, "models/"),
				DisplayName: m.DisplayName,
				Version:     m.Version,
				Methods:     m.SupportedGenerationMethods,
			})
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

func (g *geminiImpl) listModelsPage(ctx context.Context, pageToken string) (*listModelsResponse, error) {
	query := url.Values{}
	query.Set("key", g.apiKey)
	query.Set("pageSize", fmt.Sprint(listPageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiURL+"/models?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to list models: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("gemini: failed to list models: %w", err)
	}

	var page listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode model list: %w", err)
	}
	return &page, nil
}
