package app

import (
	"context"
	"database/sql"
	"fmt"

	"customer-support-router/config"
	"customer-support-router/internal/support/repository"
	"customer-support-router/internal/support/repository/memory"
	redisRepo "customer-support-router/internal/support/repository/redis"
	sqliteRepo "customer-support-router/internal/support/repository/sqlite"
	"customer-support-router/pkg/log"
)

type refundStore struct {
	repository.RefundStore
	probe func(ctx context.Context) error
	close func() error
}

// openRefundStore builds the configured backend. Inline and file records are
// seeded into it; for redis and sqlite they overwrite existing entries.
func openRefundStore(ctx context.Context, cfg config.RefundConfig, l log.Logger) (refundStore, error) {
	records := cfg.Records
	if cfg.RecordsFile != "" {
		fromFile, err := memory.LoadRecordsFile(cfg.RecordsFile)
		if err != nil {
			return refundStore{}, err
		}
		records = memory.MergeRecords(records, fromFile)
	}

	noop := func() error { return nil }

	switch cfg.Backend {
	case config.RefundBackendRedis:
		client, err := redisRepo.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return refundStore{}, err
		}
		if err := redisRepo.Seed(ctx, client, cfg.Redis.Key, records); err != nil {
			client.Close()
			return refundStore{}, fmt.Errorf("seed redis: %w", err)
		}
		l.Infof(ctx, "Refund store: redis hash %q", cfg.Redis.Key)
		return refundStore{
			RefundStore: redisRepo.New(client, cfg.Redis.Key, l),
			probe:       func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close:       client.Close,
		}, nil

	case config.RefundBackendSQLite:
		db, err := sqliteRepo.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return refundStore{}, err
		}
		if len(records) > 0 {
			if err := sqliteRepo.Seed(ctx, db, records); err != nil {
				db.Close()
				return refundStore{}, fmt.Errorf("seed sqlite: %w", err)
			}
		}
		l.Infof(ctx, "Refund store: sqlite %s", cfg.SQLite.Path)
		return refundStore{
			RefundStore: sqliteRepo.New(db, l),
			probe:       pingDB(db),
			close:       db.Close,
		}, nil

	default:
		l.Infof(ctx, "Refund store: memory (%d records)", len(records))
		return refundStore{
			RefundStore: memory.New(records),
			close:       noop,
		}, nil
	}
}

func pingDB(db *sql.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}
