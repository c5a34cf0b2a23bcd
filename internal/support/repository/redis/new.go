package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"customer-support-router/internal/support/repository"
	"customer-support-router/pkg/log"
)

const connectTimeout = 5 * time.Second

type implRepository struct {
	client *redis.Client
	key    string
	l      log.Logger
}

// New creates a Redis-backed RefundStore. Statuses live in one hash named
// key, field = upper-cased order id.
func New(client *redis.Client, key string, l log.Logger) repository.RefundStore {
	if client == nil {
		panic("support/repository/redis: client is required")
	}
	return &implRepository{client: client, key: key, l: l}
}

// Connect parses url, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Seed writes records into the hash, overwriting existing fields.
func Seed(ctx context.Context, client *redis.Client, key string, records map[string]string) error {
	if len(records) == 0 {
		return nil
	}
	values := make([]any, 0, len(records)*2)
	for id, status := range records {
		values = append(values, strings.ToUpper(strings.TrimSpace(id)), status)
	}
	if err := client.HSet(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("support/repository/redis.%s", method)
}
