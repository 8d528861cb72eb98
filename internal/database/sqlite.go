package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SingleWriterDB implements Single Writer Principle for SQLite
// Only one writer can access the database at a time
type SingleWriterDB struct {
	db     *sql.DB
	logger *zap.Logger
	mu     sync.Mutex // Mutex to ensure single writer
}

// Entry is one stored value and when it was last written.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// NewSingleWriterDB opens (or creates) the SQLite file at path
func NewSingleWriterDB(path string, logger *zap.Logger) (*SingleWriterDB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // Single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	swdb, err := NewSingleWriterDBFromConn(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return swdb, nil
}

// NewSingleWriterDBFromConn wraps an already opened connection and ensures the schema exists.
func NewSingleWriterDBFromConn(db *sql.DB, logger *zap.Logger) (*SingleWriterDB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	swdb := &SingleWriterDB{
		db:     db,
		logger: logger,
	}

	if err := swdb.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return swdb, nil
}

// initSchema creates the database schema
func (swdb *SingleWriterDB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`

	_, err := swdb.db.Exec(schema)
	return err
}

// Ping checks the database connection
func (swdb *SingleWriterDB) Ping() error {
	return swdb.db.Ping()
}

// Close closes the database connection
func (swdb *SingleWriterDB) Close() error {
	return swdb.db.Close()
}

// Put writes value under key, replacing any previous value (Single Writer)
func (swdb *SingleWriterDB) Put(ctx context.Context, key string, value []byte) error {
	swdb.mu.Lock()
	defer swdb.mu.Unlock()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := swdb.db.ExecContext(ctx, query,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}

	swdb.logger.Debug("SQLite value written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Get reads the entry stored under key (read-only, no lock needed)
func (swdb *SingleWriterDB) Get(ctx context.Context, key string) (*Entry, error) {
	query := `SELECT key, value, updated_at FROM kv_store WHERE key = ?`

	var entry Entry
	var value, updatedAtStr string

	err := swdb.db.QueryRowContext(ctx, query, key).Scan(&entry.Key, &value, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}

	entry.Value = []byte(value)
	entry.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &entry, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (swdb *SingleWriterDB) Delete(ctx context.Context, key string) error {
	swdb.mu.Lock()
	defer swdb.mu.Unlock()

	if _, err := swdb.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

var ErrKeyNotFound = errors.New("key not found")
