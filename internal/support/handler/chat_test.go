package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-router/internal/model"
	"customer-support-router/pkg/log"
)

func TestChatHandler(t *testing.T) {
	p := &mockProvider{text: "  Thank you so much for the kind words!  "}
	h := NewChatHandler(p, ChatConfig{Temperature: 0.7}, log.NewNop())

	assert.Equal(t, model.IntentGeneralChitChat, h.Category())

	resp, err := h.Handle(context.Background(), "Hi! Just wanted to say your service is great!")
	require.NoError(t, err)
	assert.Equal(t, model.IntentGeneralChitChat, resp.Route)
	assert.Equal(t, "Thank you so much for the kind words!", resp.Response)
	assert.Equal(t, "mock-1", resp.Data[model.DataModel])
	assert.Equal(t, "mock", resp.Data[model.DataProvider])
	assert.NotContains(t, resp.Data, model.DataFallback)
}

func TestChatHandlerIdempotent(t *testing.T) {
	h := NewChatHandler(&mockProvider{text: "Hello!"}, ChatConfig{}, log.NewNop())

	first, err := h.Handle(context.Background(), "hi")
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChatHandlerFallback(t *testing.T) {
	tests := []struct {
		name string
		p    *mockProvider
	}{
		{name: "provider error", p: &mockProvider{err: errBackendDown}},
		{name: "empty text", p: &mockProvider{text: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChatHandler(tt.p, ChatConfig{}, log.NewNop())

			resp, err := h.Handle(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, DefaultChatFallback, resp.Response)
			assert.Equal(t, true, resp.Data[model.DataFallback])
		})
	}
}
