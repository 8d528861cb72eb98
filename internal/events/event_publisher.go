package events

import (
	"context"
	"sync"
	"time"

	"medical-store/internal/domain"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// Inventory domain events
type ItemCreatedEvent struct {
	ItemID     string               `json:"itemId"`
	Item       domain.InventoryItem `json:"item"`
	OccurredAt time.Time            `json:"occurredAt"`
}

type ItemUpdatedEvent struct {
	ItemID     string               `json:"itemId"`
	Item       domain.InventoryItem `json:"item"`
	OccurredAt time.Time            `json:"occurredAt"`
}

type ItemDeletedEvent struct {
	ItemID     string    `json:"itemId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}

type QuantityAdjustedEvent struct {
	ItemID     string    `json:"itemId"`
	Delta      int       `json:"delta"`
	Previous   int       `json:"previous"`
	NewTotal   int       `json:"newTotal"`
	OccurredAt time.Time `json:"occurredAt"`
}

type InventoryResetEvent struct {
	ItemCount  int       `json:"itemCount"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventType names an event for headers and logs.
func EventType(event interface{}) string {
	switch event.(type) {
	case ItemCreatedEvent:
		return "InventoryItemCreated"
	case ItemUpdatedEvent:
		return "InventoryItemUpdated"
	case ItemDeletedEvent:
		return "InventoryItemDeleted"
	case QuantityAdjustedEvent:
		return "InventoryQuantityAdjusted"
	case InventoryResetEvent:
		return "InventoryReset"
	default:
		return "Unknown"
	}
}

const defaultHistorySize = 100

// InMemoryEventPublisher keeps the most recent events in memory.
type InMemoryEventPublisher struct {
	logger *zap.Logger
	limit  int

	mu     sync.Mutex
	events []interface{}
}

func NewEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventPublisher{
		logger: logger,
		limit:  defaultHistorySize,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	if len(p.events) > p.limit {
		p.events = p.events[len(p.events)-p.limit:]
	}
	p.mu.Unlock()

	p.logger.Debug("Event published (in-memory)", zap.String("event-type", EventType(event)))
	return nil
}

// Events returns a copy of the retained events, oldest first.
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interface{}, len(p.events))
	copy(out, p.events)
	return out
}
