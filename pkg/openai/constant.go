package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Well-known OpenAI-compatible endpoints, keyed by provider name.
var compatibleBaseURLs = map[string]string{
	"openai":   DefaultBaseURL,
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// BaseURLFor returns the default endpoint for an OpenAI-compatible provider name.
func BaseURLFor(provider string) string {
	if u, ok := compatibleBaseURLs[provider]; ok {
		return u
	}
	return DefaultBaseURL
}
