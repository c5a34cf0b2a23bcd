package handler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-router/internal/model"
	"customer-support-router/internal/support/repository"
	"customer-support-router/pkg/log"
)

func TestRefundHandler(t *testing.T) {
	store := &mockStore{records: map[string]string{"ORD123": "approved", "12345": "Processed"}}
	h := NewRefundHandler(store, log.NewNop())

	assert.Equal(t, model.IntentRefundRequest, h.Category())

	tests := []struct {
		name     string
		query    string
		wantText string
		wantData map[string]any
	}{
		{
			name:     "hit",
			query:    "What's the refund status for ORD123?",
			wantText: "Refund status for order ORD123: approved",
			wantData: map[string]any{model.DataOrderID: "ORD123", model.DataStatus: "approved"},
		},
		{
			name:     "hash id hit",
			query:    "Where is my refund for order #12345?",
			wantText: "Refund status for order 12345: Processed",
			wantData: map[string]any{model.DataOrderID: "12345", model.DataStatus: "Processed"},
		},
		{
			name:     "miss",
			query:    "refund for ORD999",
			wantText: MsgOrderNotFound,
			wantData: map[string]any{model.DataOrderID: "ORD999"},
		},
		{
			name:     "no order id",
			query:    "I want my money back",
			wantText: MsgOrderIDMissing,
			wantData: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, model.IntentRefundRequest, resp.Route)
			assert.Equal(t, tt.wantText, resp.Response)
			assert.Equal(t, tt.wantData, resp.Data)
		})
	}
}

func TestRefundHandlerStoreDown(t *testing.T) {
	store := &mockStore{err: fmt.Errorf("%w: %v", repository.ErrFailedToGet, errBackendDown)}
	h := NewRefundHandler(store, log.NewNop())

	resp, err := h.Handle(context.Background(), "refund for ORD123")
	require.NoError(t, err)
	assert.Equal(t, "Refund status is temporarily unavailable for order ORD123. Please try again later.", resp.Response)
	assert.Equal(t, "ORD123", resp.Data[model.DataOrderID])
	assert.Equal(t, true, resp.Data[model.DataLookupFailed])
	assert.NotContains(t, resp.Data, model.DataStatus)
}
