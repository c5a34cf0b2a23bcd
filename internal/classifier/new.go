package classifier

import (
	"context"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/llmprovider"
	"customer-support-router/pkg/log"
)

// Classifier turns a raw query into an intent category.
// Neither method fails: every internal error becomes a GENERAL_CHIT_CHAT fallback.
type Classifier interface {
	Classify(ctx context.Context, query string) model.IntentCategory
	Explain(ctx context.Context, query string) Output
}

// LLMClassifier classifies queries with a completion provider.
type LLMClassifier struct {
	llm llmprovider.Provider
	cfg Config
	l   log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
func New(llm llmprovider.Provider, cfg Config, l log.Logger) *LLMClassifier {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &LLMClassifier{
		llm: llm,
		cfg: cfg,
		l:   l,
	}
}
