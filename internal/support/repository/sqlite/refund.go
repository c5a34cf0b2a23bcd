package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"customer-support-router/internal/support/repository"
)

// GetRefundStatus selects the status row for orderID.
func (r *implRepository) GetRefundStatus(ctx context.Context, orderID string) (string, error) {
	const query = `SELECT status FROM refunds WHERE order_id = ? LIMIT 1`

	var status string
	err := r.db.QueryRowContext(ctx, query, normalizeID(orderID)).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrOrderNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRefundStatus"), err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return status, nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
