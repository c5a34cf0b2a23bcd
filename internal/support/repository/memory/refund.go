package memory

import (
	"context"

	"customer-support-router/internal/support/repository"
)

// GetRefundStatus returns the stored status or repository.ErrOrderNotFound.
func (r *implRepository) GetRefundStatus(ctx context.Context, orderID string) (string, error) {
	status, ok := r.records[normalizeID(orderID)]
	if !ok {
		return "", repository.ErrOrderNotFound
	}
	return status, nil
}
