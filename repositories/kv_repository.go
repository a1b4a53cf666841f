package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned when the key has never been written
var ErrKeyNotFound = errors.New("key not found")

// KVRepository stores opaque values by key
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

type kvRepository struct {
	db *sql.DB
}

// NewKVRepository creates a key-value repository on the kv_store table
func NewKVRepository(db *sql.DB) KVRepository {
	return &kvRepository{db: db}
}

// Get retrieves the value stored under key
func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get value for %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value
func (r *kvRepository) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to put value for %s: %w", key, err)
	}
	return nil
}
