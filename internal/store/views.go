package store

import (
	"time"

	"medical-store/internal/domain"
)

// Read views. Each one is recomputed from the current collection and the
// clock's current time; nothing derived is cached.

func (s *InventoryStore) copyItems() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Today is the reference time handed to classification.
func (s *InventoryStore) Today() time.Time {
	return s.clock.Now()
}

// Items returns the collection in stored order.
func (s *InventoryStore) Items() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// Get returns the item with the given id.
func (s *InventoryStore) Get(id string) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], nil
	}
	return domain.InventoryItem{}, domain.ErrItemNotFound
}

func (s *InventoryStore) Filtered(filters domain.Filters) []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Filter(s.items, filters, s.clock.Now())
}

func (s *InventoryStore) Alerts() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Alerts(s.items, s.clock.Now())
}

func (s *InventoryStore) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Aggregate(s.items, s.clock.Now())
}

func (s *InventoryStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Categories(s.items)
}

func (s *InventoryStore) SupplierCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SupplierCount(s.items)
}

// Status classifies item against the current time.
func (s *InventoryStore) Status(item domain.InventoryItem) domain.Status {
	return domain.Classify(item, s.clock.Now())
}
