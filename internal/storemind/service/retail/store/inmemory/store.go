// Package inmemory provides map-backed retail stores for development
// and tests.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
)

// SalesStore is a map-backed store.SalesStore.
type SalesStore struct {
	mu      sync.RWMutex
	records map[string]entity.SalesRecord
}

// NewSalesStore creates an empty in-memory sales store.
func NewSalesStore() *SalesStore {
	return &SalesStore{records: make(map[string]entity.SalesRecord)}
}

// List returns all sales records ordered by id.
func (s *SalesStore) List(ctx context.Context) ([]entity.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.SalesRecord, 0, len(s.records))
	for _, r := range s.records {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Seed loads the given records, overwriting existing ids.
func (s *SalesStore) Seed(ctx context.Context, records []entity.SalesRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records[r.ID] = r
	}
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *SalesStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *SalesStore) Close() error { return nil }

// InventoryStore is a map-backed store.InventoryStore.
type InventoryStore struct {
	mu    sync.RWMutex
	items map[string]entity.InventoryItem
}

// NewInventoryStore creates an empty in-memory inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{items: make(map[string]entity.InventoryItem)}
}

// List returns all inventory items ordered by SKU.
func (s *InventoryStore) List(ctx context.Context) ([]entity.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SKU < result[j].SKU })
	return result, nil
}

// Seed loads the given items, overwriting existing SKUs.
func (s *InventoryStore) Seed(ctx context.Context, items []entity.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.items[item.SKU] = item
	}
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *InventoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *InventoryStore) Close() error { return nil }
