package repository

import "context"

// RefundStore looks up refund statuses by order id.
// Implementations return ErrOrderNotFound for unknown orders and a wrapped
// ErrFailedToGet when the backend itself fails.
type RefundStore interface {
	GetRefundStatus(ctx context.Context, orderID string) (string, error)
}
