// Package boltdb provides a BoltDB-backed sales store.
package boltdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"

	"github.com/retailmesh/storemind/internal/storemind/service/retail/entity"
	"github.com/retailmesh/storemind/pkg/utils/json"
)

var bucketSales = []byte("sales")

// SalesStore implements store.SalesStore using BoltDB.
type SalesStore struct {
	db *bolt.DB
}

// Open opens (or creates) the BoltDB file at path and ensures the sales
// bucket exists.
func Open(path string) (*SalesStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSales)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %q: %w", bucketSales, err)
	}

	return &SalesStore{db: db}, nil
}

// List returns all sales records in key order.
func (s *SalesStore) List(_ context.Context) ([]entity.SalesRecord, error) {
	var records []entity.SalesRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSales)
		return b.ForEach(func(k, v []byte) error {
			var r entity.SalesRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("failed to unmarshal sales record %q: %w", k, err)
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Seed loads the given records, overwriting existing ids.
func (s *SalesStore) Seed(_ context.Context, records []entity.SalesRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSales)
		for _, r := range records {
			data, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("failed to marshal sales record %q: %w", r.ID, err)
			}
			if err := b.Put([]byte(r.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Ping verifies the database file is still usable.
func (s *SalesStore) Ping(_ context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketSales) == nil {
			return fmt.Errorf("bucket %q missing", bucketSales)
		}
		return nil
	})
}

// Close closes the underlying BoltDB instance.
func (s *SalesStore) Close() error {
	return s.db.Close()
}
