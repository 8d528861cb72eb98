package store

import (
	"context"
	"errors"
	"sync"

	"medical-store/internal/clock"
	"medical-store/internal/domain"
	"medical-store/internal/events"
	"medical-store/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDGenerator returns a fresh, unique item id.
type IDGenerator func() string

// Option configures an InventoryStore.
type Option func(*InventoryStore)

func WithClock(c clock.Clock) Option {
	return func(s *InventoryStore) { s.clock = c }
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *InventoryStore) { s.newID = gen }
}

func WithPublisher(p events.EventPublisher) Option {
	return func(s *InventoryStore) { s.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *InventoryStore) { s.logger = l }
}

// InventoryStore owns the authoritative collection. Every operation runs
// under one mutex and every successful mutation rewrites the whole collection
// to the repository before the lock is released. Events are published after
// the lock is released, so a slow broker never blocks readers or writers.
type InventoryStore struct {
	mu    sync.Mutex
	items []domain.InventoryItem

	repo      repository.InventoryRepository
	clock     clock.Clock
	newID     IDGenerator
	publisher events.EventPublisher
	logger    *zap.Logger
}

// New loads the collection from repo. A missing or unreadable collection is
// replaced by the seed set. The result is persisted once before returning,
// except after a failed read: the stored data is then left untouched until
// the first mutation.
func New(ctx context.Context, repo repository.InventoryRepository, opts ...Option) *InventoryStore {
	s := &InventoryStore{
		repo:      repo,
		clock:     clock.NewSystem(nil),
		newID:     uuid.NewString,
		publisher: events.NewEventPublisher(nil),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load(ctx)
	s.items = items
	if err == nil {
		s.persist(ctx)
	}
	return s
}

// load returns the starting collection. The error is non-nil only when the
// repository held data that could not be read.
func (s *InventoryStore) load(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrNoData):
		s.logger.Info("No stored inventory, starting from seed data")
		return s.seed(), nil
	case err != nil:
		s.logger.Warn("Failed to load stored inventory, starting from seed data without overwriting it", zap.Error(err))
		return s.seed(), err
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = s.newID()
		}
	}
	s.logger.Info("Inventory loaded", zap.Int("items", len(items)))
	return items, nil
}

func (s *InventoryStore) seed() []domain.InventoryItem {
	return domain.SeedInventory(s.clock.Now(), s.newID)
}

// persist is best-effort: failures are logged and memory stays authoritative.
func (s *InventoryStore) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.logger.Error("Failed to persist inventory", zap.Int("items", len(s.items)), zap.Error(err))
	}
}

// publish must be called without s.mu held.
func (s *InventoryStore) publish(ctx context.Context, event interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("event-type", events.EventType(event)),
			zap.Error(err),
		)
	}
}

func (s *InventoryStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Create assigns a new id and inserts the item at the front of the collection.
func (s *InventoryStore) Create(ctx context.Context, input domain.NewItem) domain.InventoryItem {
	s.mu.Lock()
	item := input.Build(s.newID())
	s.items = append([]domain.InventoryItem{item}, s.items...)
	s.persist(ctx)
	event := events.ItemCreatedEvent{ItemID: item.ID, Item: item, OccurredAt: s.clock.Now()}
	s.mu.Unlock()

	s.logger.Info("Inventory item created", zap.String("item_id", item.ID), zap.String("name", item.Name))
	s.publish(ctx, event)
	return item
}

// Update merges the set fields of patch into the item with the given id.
func (s *InventoryStore) Update(ctx context.Context, id string, patch domain.ItemPatch) (domain.InventoryItem, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}
	s.items[idx] = patch.Apply(s.items[idx])
	updated := s.items[idx]
	s.persist(ctx)
	event := events.ItemUpdatedEvent{ItemID: id, Item: updated, OccurredAt: s.clock.Now()}
	s.mu.Unlock()

	s.logger.Info("Inventory item updated", zap.String("item_id", id))
	s.publish(ctx, event)
	return updated, nil
}

// AdjustQuantity adds delta to the item's quantity, clamping at zero.
func (s *InventoryStore) AdjustQuantity(ctx context.Context, id string, delta int) (domain.InventoryItem, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}
	previous := s.items[idx].Quantity
	s.items[idx].Quantity = max(0, previous+delta)
	adjusted := s.items[idx]
	s.persist(ctx)
	event := events.QuantityAdjustedEvent{
		ItemID:     id,
		Delta:      delta,
		Previous:   previous,
		NewTotal:   adjusted.Quantity,
		OccurredAt: s.clock.Now(),
	}
	s.mu.Unlock()

	s.logger.Info("Inventory quantity adjusted",
		zap.String("item_id", id),
		zap.Int("delta", delta),
		zap.Int("quantity", adjusted.Quantity),
	)
	s.publish(ctx, event)
	return adjusted, nil
}

// Delete removes the item with the given id.
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrItemNotFound
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.persist(ctx)
	event := events.ItemDeletedEvent{ItemID: id, Name: removed.Name, OccurredAt: s.clock.Now()}
	s.mu.Unlock()

	s.logger.Info("Inventory item deleted", zap.String("item_id", id))
	s.publish(ctx, event)
	return nil
}

// Reset replaces the whole collection with freshly generated seed data.
func (s *InventoryStore) Reset(ctx context.Context) []domain.InventoryItem {
	s.mu.Lock()
	s.items = s.seed()
	s.persist(ctx)
	items := s.copyItems()
	event := events.InventoryResetEvent{ItemCount: len(items), OccurredAt: s.clock.Now()}
	s.mu.Unlock()

	s.logger.Info("Inventory reset to seed data", zap.Int("items", len(items)))
	s.publish(ctx, event)
	return items
}

// Close persists the collection one last time and closes the repository.
func (s *InventoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx)
	return s.repo.Close()
}
