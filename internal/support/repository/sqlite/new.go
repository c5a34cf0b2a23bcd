package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"customer-support-router/internal/support/repository"
	"customer-support-router/pkg/log"
)

const MemoryPath = ":memory:"

const schema = `
	CREATE TABLE IF NOT EXISTS refunds (
		order_id   TEXT PRIMARY KEY,
		status     TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed RefundStore on an opened database.
func New(db *sql.DB, l log.Logger) repository.RefundStore {
	if db == nil {
		panic("support/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens the database at path and creates the refunds table.
// An in-memory database is pinned to one connection so every query sees the same data.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// Seed upserts records into the refunds table in one transaction.
func Seed(ctx context.Context, db *sql.DB, records map[string]string) error {
	const query = `
		INSERT INTO refunds (order_id, status, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(order_id) DO UPDATE SET status = excluded.status, updated_at = CURRENT_TIMESTAMP`

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	for id, status := range records {
		if _, err := tx.ExecContext(ctx, query, normalizeID(id), status); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("support/repository/sqlite.%s", method)
}
