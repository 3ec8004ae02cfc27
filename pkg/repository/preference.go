package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/shopscope/pkg/domain"
)

// PreferenceRepository stores serialized user preference sets
type PreferenceRepository struct {
	db *sqlx.DB
}

// preferenceSQL represents a preference record for SQL operations
type preferenceSQL struct {
	UserID    string    `db:"user_id"`
	Tags      string    `db:"tags"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreferences returns the preference record of a user, nil if the user has none
func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
	var row preferenceSQL
	err := r.db.GetContext(ctx, &row, "SELECT user_id, tags, updated_at FROM user_preferences WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &domain.PreferenceRecord{UserID: row.UserID, Tags: []byte(row.Tags), UpdatedAt: row.UpdatedAt}, nil
}

// UpdatePreferences reads the user's record, passes it to fn (nil if absent) and stores the result,
// all in one transaction. The transaction is retried while SQLite reports locks.
func (r *PreferenceRepository) UpdatePreferences(ctx context.Context, userID string, fn func(current []byte) ([]byte, error)) error {
	return withLockRetry(ctx, func() error {
		return r.updateTx(ctx, userID, fn)
	})
}

func (r *PreferenceRepository) updateTx(ctx context.Context, userID string, fn func(current []byte) ([]byte, error)) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var current []byte
	var tags string
	err = tx.GetContext(ctx, &tags, "SELECT tags FROM user_preferences WHERE user_id = ?", userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("read preferences: %w", err)
	default:
		current = []byte(tags)
	}

	updated, err := fn(current)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_preferences (user_id, tags, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET tags = excluded.tags, updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, userID, string(updated), time.Now().UTC()); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return tx.Commit()
}
