package gemini

import "context"

// IGemini is a generateContent client for one Gemini model. Requests may mix
// text and inline image parts, which is how schedule photos reach the model.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent performs a single generateContent call; it never retries.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg, filling defaults for model, base URL and HTTP client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
