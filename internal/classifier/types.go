package classifier

import "customer-support-router/internal/model"

// Output is the classification result. Intent is always a valid category.
type Output struct {
	Intent   model.IntentCategory `json:"intent"`
	Fallback bool                 `json:"fallback"`
	Reason   string               `json:"reason,omitempty"` // set when Fallback is true
	Raw      string               `json:"raw,omitempty"`    // provider text, when there was any
}

// Config tunes the completion request.
type Config struct {
	Temperature float64
	MaxTokens   int
}
