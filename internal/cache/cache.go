// Package cache provides an optional BadgerDB-backed memoization layer
// for catalog-derived lookups (foot decomposition strings, afail
// joins) that the HTTP surface recomputes on every request. It is
// strictly an optimization: every value it stores is also derivable
// for free from internal/catalog and internal/scansion, so a cold or
// corrupt cache degrades to recomputation, never to an error (grounded
// on the teacher's graph.SnapshotManager BadgerDB usage).
package cache

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefixFeet = "aruuz:feet:"

// Cache wraps a BadgerDB handle for read-through memoization.
//
// Thread Safety: safe for concurrent use; BadgerDB handles its own
// concurrency control.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (creating if absent) a BadgerDB at dir.
func Open(dir string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: opening badger db at %q: %w", dir, err)
	}
	return &Cache{db: db, logger: logger}, nil
}

// Close releases the underlying BadgerDB handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// FeetKey derives the memoization key for a (meter id, code) pair.
func FeetKey(meterID int, code string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefixFeet, meterID, code)
}

// GetFeet returns a cached feet-flat string for key, if present.
func (c *Cache) GetFeet(key string) (string, bool) {
	if c == nil || c.db == nil {
		return "", false
	}
	var value string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = string(v)
			return nil
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			c.logger.Warn("cache: read failed, falling back to recomputation", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// PutFeet stores a feet-flat string under key.
func (c *Cache) PutFeet(key, value string) {
	if c == nil || c.db == nil {
		return
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		c.logger.Warn("cache: write failed, continuing without memoization", "key", key, "error", err)
	}
}
