package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/bnema/colorpref/internal/logging"
)

const (
	getPreferenceQuery = `SELECT value FROM preferences WHERE key = ?`
	setPreferenceQuery = `INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type preferenceRepo struct {
	lazy *LazyDB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(lazy *LazyDB) repository.PreferenceRepository {
	return &preferenceRepo{lazy: lazy}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, error) {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return "", err
	}

	var value string
	err = db.QueryRowContext(ctx, getPreferenceQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return value, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("setting preference")

	db, err := r.lazy.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, setPreferenceQuery, key, value); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}
