// Package store defines the persistence interfaces of the retail data
// services. Backends live in the subpackages inmemory, boltdb and
// sqlite.
package store

import (
	"context"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
)

// SalesStore persists sales history.
type SalesStore interface {
	// List returns all sales records.
	List(ctx context.Context) ([]entity.SalesRecord, error)
	// Seed loads the given records, replacing nothing; existing ids are
	// overwritten. Used once at provider initialization.
	Seed(ctx context.Context, records []entity.SalesRecord) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// InventoryStore persists inventory levels.
type InventoryStore interface {
	// List returns all inventory items.
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// Seed loads the given items; existing SKUs are overwritten.
	Seed(ctx context.Context, items []entity.InventoryItem) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
