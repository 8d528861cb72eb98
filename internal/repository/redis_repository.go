package repository

import (
	"context"
	"fmt"
	"time"

	"medical-store/internal/config"
	"medical-store/internal/domain"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisRepository stores the collection as a single Redis string with no TTL.
type RedisRepository struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisRepository connects and pings Redis.
func NewRedisRepository(cfg *config.Config, logger *zap.Logger) (*RedisRepository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		// Retry settings
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s:%s: %w", cfg.RedisHost, cfg.RedisPort, err)
	}

	logger.Info("Redis storage initialized successfully",
		zap.String("host", cfg.RedisHost),
		zap.String("port", cfg.RedisPort),
		zap.Int("db", cfg.RedisDB),
	)

	return NewRedisRepositoryWithClient(rdb, cfg.StorageKey, logger), nil
}

func NewRedisRepositoryWithClient(client *redis.Client, key string, logger *zap.Logger) *RedisRepository {
	return &RedisRepository{client: client, key: key, logger: logger}
}

func (r *RedisRepository) Load(ctx context.Context) ([]domain.InventoryItem, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNoData
	}
	if err != nil {
		r.logger.Warn("Redis Get error", zap.String("key", r.key), zap.Error(err))
		return nil, fmt.Errorf("redis get error: %w", err)
	}
	return decodeItems(val)
}

func (r *RedisRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Warn("Redis Set error", zap.String("key", r.key), zap.Error(err))
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}
