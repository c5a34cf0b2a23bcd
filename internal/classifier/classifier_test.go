package classifier

import (
	"context"
	"errors"
	"testing"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/llmprovider"
	"customer-support-router/pkg/log"
)

type mockProvider struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-1"}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-1" }

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		err          error
		wantIntent   model.IntentCategory
		wantFallback bool
		wantReason   string
	}{
		{name: "refund", text: "REFUND_REQUEST", wantIntent: model.IntentRefundRequest},
		{name: "technical", text: "TECHNICAL_SUPPORT", wantIntent: model.IntentTechnicalSupport},
		{name: "chit chat", text: "GENERAL_CHIT_CHAT", wantIntent: model.IntentGeneralChitChat},
		{name: "whitespace and case", text: "  technical_support\n", wantIntent: model.IntentTechnicalSupport},
		{name: "unknown label", text: "BILLING", wantIntent: model.IntentGeneralChitChat, wantFallback: true, wantReason: ReasonUnknownLabel},
		{name: "label inside sentence", text: "The category is REFUND_REQUEST", wantIntent: model.IntentGeneralChitChat, wantFallback: true, wantReason: ReasonUnknownLabel},
		{name: "empty", text: "", wantIntent: model.IntentGeneralChitChat, wantFallback: true, wantReason: ReasonEmptyResponse},
		{name: "provider error", err: errors.New("timeout"), wantIntent: model.IntentGeneralChitChat, wantFallback: true, wantReason: ReasonProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&mockProvider{text: tt.text, err: tt.err}, Config{}, log.NewNop())
			out := c.Explain(context.Background(), "Where is my refund for order #12345?")

			if out.Intent != tt.wantIntent {
				t.Errorf("intent = %s, want %s", out.Intent, tt.wantIntent)
			}
			if out.Fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", out.Fallback, tt.wantFallback)
			}
			if out.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", out.Reason, tt.wantReason)
			}
			if got := c.Classify(context.Background(), "again"); got != tt.wantIntent {
				t.Errorf("Classify = %s, want %s", got, tt.wantIntent)
			}
		})
	}
}

func TestClassifyRequestShape(t *testing.T) {
	p := &mockProvider{text: "GENERAL_CHIT_CHAT"}
	c := New(p, Config{Temperature: 0.2}, log.NewNop())

	c.Classify(context.Background(), "Hi there")

	if p.lastReq == nil {
		t.Fatal("provider was not called")
	}
	if len(p.lastReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(p.lastReq.Messages))
	}
	if p.lastReq.Messages[0].Role != llmprovider.RoleSystem || p.lastReq.Messages[0].Content != PromptClassifierSystem {
		t.Errorf("first message should be the classifier system prompt")
	}
	if p.lastReq.Messages[1].Role != llmprovider.RoleUser || p.lastReq.Messages[1].Content != "Hi there" {
		t.Errorf("second message should carry the query verbatim, got %+v", p.lastReq.Messages[1])
	}
	if p.lastReq.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", p.lastReq.Temperature)
	}
	if p.lastReq.MaxTokens != DefaultMaxTokens {
		t.Errorf("max tokens = %d, want %d", p.lastReq.MaxTokens, DefaultMaxTokens)
	}
}
