package app

import (
	"context"
	"fmt"

	"medical-store/internal/clock"
	"medical-store/internal/config"
	"medical-store/internal/events"
	"medical-store/internal/repository"
	"medical-store/internal/store"

	"go.uber.org/zap"
)

// Inventory bundles the store with the resources it owns.
type Inventory struct {
	Store     *store.InventoryStore
	publisher events.EventPublisher
	logger    *zap.Logger
}

// NewInventory wires repository, event publisher and clock from cfg and loads the store.
func NewInventory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Inventory, error) {
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	repo := repository.NewInventoryRepository(cfg, logger)
	publisher := newPublisher(cfg, logger)

	inventoryStore := store.New(ctx, repo,
		store.WithClock(clock.NewSystem(loc)),
		store.WithPublisher(publisher),
		store.WithLogger(logger),
	)

	return &Inventory{Store: inventoryStore, publisher: publisher, logger: logger}, nil
}

func newPublisher(cfg *config.Config, logger *zap.Logger) events.EventPublisher {
	if !cfg.UseKafka {
		return events.NewEventPublisher(logger)
	}

	publisher, err := events.NewKafkaEventPublisher(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
		return events.NewEventPublisher(logger)
	}
	logger.Info("Kafka publisher initialized",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic_items", cfg.KafkaTopicItems),
		zap.String("topic_stock", cfg.KafkaTopicStock),
	)
	return publisher
}

// Close flushes the store, closes the repository and stops the publisher.
func (i *Inventory) Close(ctx context.Context) error {
	err := i.Store.Close(ctx)
	if closer, ok := i.publisher.(interface{ Close() error }); ok {
		if cerr := closer.Close(); cerr != nil {
			i.logger.Warn("Failed to close event publisher", zap.Error(cerr))
		}
	}
	return err
}
