package openai

import "context"

// IOpenAI is a client for an OpenAI-compatible chat completions API.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a chat completions request
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
