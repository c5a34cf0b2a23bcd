package llmprovider

import (
	"context"
	"strings"

	"customer-support-router/pkg/gemini"
	"customer-support-router/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same
// adapter serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.ChatCompletion(ctx, openai.ChatRequest{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Text:         text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toGeminiRequest(req))
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// toGeminiRequest folds system messages into system_instruction and maps
// the assistant role to Gemini's "model" role.
func toGeminiRequest(req *Request) gemini.GenerateRequest {
	var system []string
	out := gemini.GenerateRequest{}

	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			out.Contents = append(out.Contents, gemini.Content{
				Role:  gemini.RoleModel,
				Parts: []gemini.Part{{Text: m.Content}},
			})
		default:
			out.Contents = append(out.Contents, gemini.Content{
				Role:  gemini.RoleUser,
				Parts: []gemini.Part{{Text: m.Content}},
			})
		}
	}

	if len(system) > 0 {
		out.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}

	out.GenerationConfig = &gemini.GenerationConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
	}

	return out
}
