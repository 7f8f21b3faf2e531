package qwen

import "context"

// IQwen talks to an OpenAI-compatible chat completions endpoint (DashScope by
// default). Image parts are sent as data URLs, so a vision model is needed
// for image conversion.
type IQwen interface {
	// GenerateContent performs a single chat completion call; it never retries.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg and returns a client that is safe for concurrent use.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
