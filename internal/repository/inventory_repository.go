package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"medical-store/internal/config"
	"medical-store/internal/domain"

	"go.uber.org/zap"
)

// InventoryRepository persists the whole inventory collection under one key.
type InventoryRepository interface {
	// Load returns ErrNoData when nothing has been stored yet.
	Load(ctx context.Context) ([]domain.InventoryItem, error)
	Save(ctx context.Context, items []domain.InventoryItem) error
	Close() error
}

var ErrNoData = errors.New("no stored inventory")

// NewInventoryRepository builds the backend named by cfg.StorageDriver.
// Any backend that fails to open falls back to memory.
func NewInventoryRepository(cfg *config.Config, logger *zap.Logger) InventoryRepository {
	var (
		repo InventoryRepository
		err  error
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return NewInMemoryInventoryRepository()
	case config.StorageFile, "":
		repo, err = NewFileRepository(cfg.StorageDir, cfg.StorageKey)
	case config.StorageSQLite:
		repo, err = NewSQLiteRepository(cfg.SQLitePath, cfg.StorageKey, logger)
	case config.StorageRedis:
		repo, err = NewRedisRepository(cfg, logger)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if err != nil {
		logger.Warn("Failed to initialize storage, using in-memory repository",
			zap.String("driver", cfg.StorageDriver),
			zap.Error(err),
		)
		return NewInMemoryInventoryRepository()
	}

	logger.Info("Inventory storage initialized", zap.String("driver", cfg.StorageDriver))
	return repo
}

func encodeItems(items []domain.InventoryItem) ([]byte, error) {
	if items == nil {
		items = []domain.InventoryItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}
	return data, nil
}

func decodeItems(data []byte) ([]domain.InventoryItem, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return []domain.InventoryItem{}, nil
	}
	var items []domain.InventoryItem
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return items, nil
}
