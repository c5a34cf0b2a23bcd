package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"customer-support-router/internal/support/repository"
)

// GetRefundStatus reads the order's field from the refunds hash.
func (r *implRepository) GetRefundStatus(ctx context.Context, orderID string) (string, error) {
	status, err := r.client.HGet(ctx, r.key, strings.ToUpper(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrOrderNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRefundStatus"), err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return status, nil
}
