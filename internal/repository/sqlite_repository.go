package repository

import (
	"context"
	"errors"

	"medical-store/internal/database"
	"medical-store/internal/domain"

	"go.uber.org/zap"
)

// SQLiteRepository keeps the collection as one row of the key/value table.
type SQLiteRepository struct {
	db  *database.SingleWriterDB
	key string
}

// NewSQLiteRepository opens the database file at path.
func NewSQLiteRepository(path, key string, logger *zap.Logger) (*SQLiteRepository, error) {
	db, err := database.NewSingleWriterDB(path, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQLiteRepositoryWithDB(db, key), nil
}

func NewSQLiteRepositoryWithDB(db *database.SingleWriterDB, key string) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]domain.InventoryItem, error) {
	entry, err := r.db.Get(ctx, r.key)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(entry.Value)
}

func (r *SQLiteRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	return r.db.Put(ctx, r.key, data)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
