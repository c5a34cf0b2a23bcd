package classifier

import (
	"context"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/llmprovider"
	"customer-support-router/pkg/metrics"
)

// Classify determines the intent of a customer query.
func (c *LLMClassifier) Classify(ctx context.Context, query string) model.IntentCategory {
	return c.Explain(ctx, query).Intent
}

// Explain classifies query and reports whether the fallback category was used and why.
func (c *LLMClassifier) Explain(ctx context.Context, query string) Output {
	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			llmprovider.System(PromptClassifierSystem),
			llmprovider.User(query),
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: LLM call failed, falling back to %s: %v", LogPrefixClassify, FallbackIntent, err)
		return fallback(ReasonProviderError, "")
	}

	if resp == nil || resp.Text == "" {
		c.l.Warnf(ctx, "%s: empty LLM response, falling back to %s", LogPrefixClassify, FallbackIntent)
		return fallback(ReasonEmptyResponse, "")
	}

	intent, ok := model.ParseIntentCategory(resp.Text)
	if !ok {
		c.l.Warnf(ctx, "%s: invalid classification %q, falling back to %s", LogPrefixClassify, resp.Text, FallbackIntent)
		return fallback(ReasonUnknownLabel, resp.Text)
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return Output{Intent: intent, Raw: resp.Text}
}

func fallback(reason, raw string) Output {
	metrics.ObserveFallback(metrics.ComponentClassifier, reason)
	return Output{
		Intent:   FallbackIntent,
		Fallback: true,
		Reason:   reason,
		Raw:      raw,
	}
}
