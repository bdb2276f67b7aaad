package store

import (
	"context"
	"database/sql"
	"fmt"
)

// StateStore persists keyed string records in the state table. It is the
// durable equivalent of the browser localStorage the widget grew out of:
// one value per key, last write wins.
type StateStore struct {
	db *sql.DB
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// Get returns the value stored under key. The second return reports
// whether the key exists.
func (s *StateStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM state WHERE key = ?
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get state %q: %w", key, err)
	}

	return value, true, nil
}

// Set writes a single key.
func (s *StateStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}

	return nil
}

// SetMany writes all given keys in one transaction so a logical mutation
// never leaves one key updated and another stale.
func (s *StateStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin state transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO state (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			return fmt.Errorf("failed to set state %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state transaction: %w", err)
	}

	return nil
}
