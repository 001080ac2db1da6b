// Package sqlite provides a SQLite-backed inventory store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	sku           TEXT PRIMARY KEY,
	product       TEXT NOT NULL,
	store         TEXT NOT NULL,
	on_hand       INTEGER NOT NULL DEFAULT 0,
	reorder_point INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_inventory_store ON inventory(store);
`

// InventoryStore implements store.InventoryStore using SQLite.
type InventoryStore struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite file at path and applies the
// schema.
func Open(path string) (*InventoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &InventoryStore{db: db}, nil
}

// List returns all inventory items ordered by SKU.
func (s *InventoryStore) List(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sku, product, store, on_hand, reorder_point FROM inventory ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(&item.SKU, &item.Product, &item.Store, &item.OnHand, &item.ReorderPoint); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Seed loads the given items, overwriting existing SKUs.
func (s *InventoryStore) Seed(ctx context.Context, items []entity.InventoryItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO inventory (sku, product, store, on_hand, reorder_point) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.SKU, item.Product, item.Store, item.OnHand, item.ReorderPoint); err != nil {
			return fmt.Errorf("failed to seed sku %q: %w", item.SKU, err)
		}
	}
	return tx.Commit()
}

// Ping verifies the database is reachable.
func (s *InventoryStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (s *InventoryStore) Close() error {
	return s.db.Close()
}
