// Package sqlite provides a SQLite-backed key-value store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/astrokit/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/astrokit/internal/platform/timeouts"
	"github.com/louisbranch/astrokit/internal/storage"
	"github.com/louisbranch/astrokit/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	kindInt    = "int"
	kindFloat  = "float"
	kindString = "string"
)

// Store persists typed key-value entries in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.KeyValueStore = (*Store)(nil)

// Open opens a SQLite key-value store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL", cleanPath, timeouts.StoreBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetInt returns the int stored at key.
func (s *Store) GetInt(ctx context.Context, key string) (int, bool, error) {
	row, ok, err := s.get(ctx, key, kindInt)
	if err != nil || !ok {
		return 0, false, err
	}
	return int(row.intValue.Int64), true, nil
}

// PutInt stores an int at key.
func (s *Store) PutInt(ctx context.Context, key string, value int) error {
	return s.put(ctx, key, kindInt, int64(value), nil, nil)
}

// GetString returns the string stored at key.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	row, ok, err := s.get(ctx, key, kindString)
	if err != nil || !ok {
		return "", false, err
	}
	return row.textValue.String, true, nil
}

// PutString stores a string at key.
func (s *Store) PutString(ctx context.Context, key string, value string) error {
	return s.put(ctx, key, kindString, nil, nil, value)
}

// GetFloat returns the float stored at key.
func (s *Store) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	row, ok, err := s.get(ctx, key, kindFloat)
	if err != nil || !ok {
		return 0, false, err
	}
	return row.realValue.Float64, true, nil
}

// PutFloat stores a float at key.
func (s *Store) PutFloat(ctx context.Context, key string, value float64) error {
	return s.put(ctx, key, kindFloat, nil, value, nil)
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

type entryRow struct {
	kind      string
	intValue  sql.NullInt64
	realValue sql.NullFloat64
	textValue sql.NullString
}

func (s *Store) get(ctx context.Context, key string, kind string) (entryRow, bool, error) {
	if err := s.ready(ctx); err != nil {
		return entryRow{}, false, err
	}

	var row entryRow
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT kind, int_value, real_value, text_value FROM kv_entries WHERE key = ?`,
		key,
	).Scan(&row.kind, &row.intValue, &row.realValue, &row.textValue)
	if errors.Is(err, sql.ErrNoRows) {
		return entryRow{}, false, nil
	}
	if err != nil {
		return entryRow{}, false, fmt.Errorf("get %s: %w", key, err)
	}
	if row.kind != kind {
		return entryRow{}, false, nil
	}
	return row, true, nil
}

func (s *Store) put(ctx context.Context, key string, kind string, intValue any, realValue any, textValue any) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("key is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO kv_entries (key, kind, int_value, real_value, text_value, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   kind = excluded.kind,
		   int_value = excluded.int_value,
		   real_value = excluded.real_value,
		   text_value = excluded.text_value,
		   updated_at = excluded.updated_at`,
		key,
		kind,
		intValue,
		realValue,
		textValue,
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}
