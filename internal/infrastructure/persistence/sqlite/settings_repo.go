package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/toolip/internal/domain/repository"
	"github.com/bnema/toolip/internal/logging"
)

const (
	getSettingSQL  = `SELECT value FROM settings WHERE key = ?`
	listSettingSQL = `SELECT key, value FROM settings ORDER BY key`
	upsertSQL      = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a SQLite-backed key/value settings store.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, getSettingSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key string, value []byte) error {
	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(value)).Msg("writing setting")

	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, upsertSQL, key, value); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetAll(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, listSettingSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}
	return out, nil
}
