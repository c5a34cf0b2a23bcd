package handler

import (
	"context"
	"strings"

	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
	"customer-support-router/pkg/llmprovider"
	"customer-support-router/pkg/log"
	"customer-support-router/pkg/metrics"
)

// ChatConfig tunes the reply generation.
type ChatConfig struct {
	Temperature  float64
	MaxTokens    int
	FallbackText string
}

type chatHandler struct {
	llm llmprovider.Provider
	cfg ChatConfig
	l   log.Logger
}

var _ support.Handler = (*chatHandler)(nil)

// NewChatHandler creates the GENERAL_CHIT_CHAT handler.
func NewChatHandler(llm llmprovider.Provider, cfg ChatConfig, l log.Logger) support.Handler {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultChatMaxTokens
	}
	if cfg.FallbackText == "" {
		cfg.FallbackText = DefaultChatFallback
	}
	return &chatHandler{llm: llm, cfg: cfg, l: l}
}

func (h *chatHandler) Category() model.IntentCategory {
	return model.IntentGeneralChitChat
}

// Handle generates a short friendly reply.
func (h *chatHandler) Handle(ctx context.Context, query string) (model.QueryResponse, error) {
	resp, err := h.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			llmprovider.System(PromptChatSystem),
			llmprovider.User(query),
		},
		Temperature: h.cfg.Temperature,
		MaxTokens:   h.cfg.MaxTokens,
	})
	if err != nil {
		h.l.Warnf(ctx, "%s: LLM call failed, using fallback reply: %v", LogPrefixChat, err)
		return h.fallback(reasonProviderError), nil
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text)
	}
	if text == "" {
		h.l.Warnf(ctx, "%s: empty LLM response, using fallback reply", LogPrefixChat)
		return h.fallback(reasonEmptyResponse), nil
	}

	return model.NewQueryResponse(model.IntentGeneralChitChat, text, map[string]any{
		model.DataModel:    resp.ModelName,
		model.DataProvider: resp.ProviderName,
	}), nil
}

func (h *chatHandler) fallback(reason string) model.QueryResponse {
	metrics.ObserveFallback(metrics.ComponentChat, reason)
	return model.NewQueryResponse(model.IntentGeneralChitChat, h.cfg.FallbackText, map[string]any{
		model.DataFallback: true,
	})
}
