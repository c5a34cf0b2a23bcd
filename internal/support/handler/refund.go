package handler

import (
	"context"
	"errors"
	"fmt"

	"customer-support-router/internal/model"
	"customer-support-router/internal/support"
	"customer-support-router/internal/support/repository"
	"customer-support-router/pkg/log"
	"customer-support-router/pkg/metrics"
)

type refundHandler struct {
	store repository.RefundStore
	l     log.Logger
}

var _ support.Handler = (*refundHandler)(nil)

// NewRefundHandler creates the REFUND_REQUEST handler.
func NewRefundHandler(store repository.RefundStore, l log.Logger) support.Handler {
	return &refundHandler{store: store, l: l}
}

func (h *refundHandler) Category() model.IntentCategory {
	return model.IntentRefundRequest
}

// Handle extracts the order id and reports its refund status.
func (h *refundHandler) Handle(ctx context.Context, query string) (model.QueryResponse, error) {
	orderID, ok := ExtractOrderID(query)
	if !ok {
		h.l.Infof(ctx, "%s: no order id in query", LogPrefixRefund)
		return model.NewQueryResponse(model.IntentRefundRequest, MsgOrderIDMissing, nil), nil
	}

	status, err := h.store.GetRefundStatus(ctx, orderID)
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return model.NewQueryResponse(model.IntentRefundRequest, MsgOrderNotFound, map[string]any{
			model.DataOrderID: orderID,
		}), nil
	case err != nil:
		h.l.Warnf(ctx, "%s: lookup for order %s failed: %v", LogPrefixRefund, orderID, err)
		metrics.ObserveFallback(metrics.ComponentRefund, reasonLookupFailed)
		return model.NewQueryResponse(model.IntentRefundRequest, fmt.Sprintf(msgRefundUnavailable, orderID), map[string]any{
			model.DataOrderID:      orderID,
			model.DataLookupFailed: true,
		}), nil
	}

	return model.NewQueryResponse(model.IntentRefundRequest, fmt.Sprintf(msgRefundStatus, orderID, status), map[string]any{
		model.DataOrderID: orderID,
		model.DataStatus:  status,
	}), nil
}
