package repository

import (
	"context"
	"sync"

	"medical-store/internal/domain"
)

// InMemoryInventoryRepository keeps the encoded collection in process memory.
// Storing the encoded form means callers never share slices with it.
type InMemoryInventoryRepository struct {
	mu   sync.RWMutex
	data []byte
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{}
}

func (r *InMemoryInventoryRepository) Load(ctx context.Context) ([]domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data == nil {
		return nil, ErrNoData
	}
	return decodeItems(r.data)
}

func (r *InMemoryInventoryRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

func (r *InMemoryInventoryRepository) Close() error {
	return nil
}
