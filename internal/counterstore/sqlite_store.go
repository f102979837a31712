package counterstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/aleister1102/errnotify/internal/errorwrapper"
)

// SQLiteStore persists counters in a SQLite database so the rate-limit
// window is shared across processes pointing at the same file.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore opens (or creates) the counter database and ensures the
// schema is set up.
func NewSQLiteStore(dataSourceName string, logger zerolog.Logger) (*SQLiteStore, error) {
	moduleLogger := logger.With().Str("module", "SQLiteStore").Logger()

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		moduleLogger.Error().Err(err).Str("directory", dbDir).Msg("Failed to create counter database directory")
		return nil, errorwrapper.WrapError(err, "failed to create counter database directory")
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		moduleLogger.Error().Err(err).Str("db_path", dataSourceName).Msg("Failed to open counter database")
		return nil, errorwrapper.WrapError(err, "sql.Open failed")
	}

	store := &SQLiteStore{
		db:     dbInstance,
		logger: moduleLogger,
	}

	if err := store.initSchema(); err != nil {
		_ = store.Close()
		return nil, errorwrapper.WrapError(err, "failed to initialize schema")
	}

	moduleLogger.Debug().Str("db_path", dataSourceName).Msg("Counter store initialized")
	return store, nil
}

// initSchema creates the counters table if it doesn't already exist
func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS counters (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		s.logger.Error().Err(err).Msg("Failed to initialize counters schema")
		return err
	}
	return nil
}

// Get returns the counter value for key, treating expired rows as absent
func (s *SQLiteStore) Get(ctx context.Context, key string) (int64, bool, error) {
	query := `SELECT value, expires_at FROM counters WHERE key = ?`

	var value int64
	var expiresAt int64
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to read counter")
		return 0, false, errorwrapper.WrapError(err, "failed to read counter")
	}

	if time.Now().UnixMilli() >= expiresAt {
		return 0, false, nil
	}
	return value, true, nil
}

// Put writes value under key with a fresh TTL. Expired rows are simply
// overwritten; the store never deletes keys.
func (s *SQLiteStore) Put(ctx context.Context, key string, value int64, ttl time.Duration) error {
	query := `
	INSERT INTO counters (key, value, expires_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`
	expiresAt := time.Now().Add(ttl).UnixMilli()
	if _, err := s.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		s.logger.Error().Err(err).Str("key", key).Int64("value", value).Msg("Failed to write counter")
		return errorwrapper.WrapError(err, "failed to write counter")
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
