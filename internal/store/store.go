// Package store implements the transactional storage core: one embedded bbolt
// environment holding ten independently keyed tables, scoped read/write
// transaction helpers, per-table repository operations, the stock-movement
// processor, and the product/component relationship manager.
//
// The store performs no logging and no retries; every operation returns its
// outcome (value, not-found, or error) to the caller. Point-lookup absence is
// reported through a bool, distinct from errors.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const databaseFile = "inventory.db"

// defaultMaxSize mirrors the 1 GiB environment cap of the original deployment.
const defaultMaxSize = 1 << 30

// One named bucket per entity kind, created idempotently at Open.
var (
	bucketProducts          = []byte("products")
	bucketComponents        = []byte("components")
	bucketMovements         = []byte("movements")
	bucketSupplierOrders    = []byte("supplier_orders")
	bucketOrders            = []byte("orders")
	bucketProcurementGroups = []byte("procurement_groups")
	bucketAssemblyTimelines = []byte("assembly_timelines")
	bucketProductionRates   = []byte("production_rates")
	bucketReorderPoints     = []byte("reorder_points")
	bucketWatches           = []byte("watches")
)

func tableBuckets() [][]byte {
	return [][]byte{
		bucketProducts,
		bucketComponents,
		bucketMovements,
		bucketSupplierOrders,
		bucketOrders,
		bucketProcurementGroups,
		bucketAssemblyTimelines,
		bucketProductionRates,
		bucketReorderPoints,
		bucketWatches,
	}
}

// Store owns the single long-lived storage environment. It is constructed once
// at startup, passed by reference to every caller, and closed at shutdown.
// bbolt provides the concurrency model the tables rely on: many concurrent
// read transactions over point-in-time snapshots, at most one write
// transaction at a time.
type Store struct {
	db               *bolt.DB
	strictComponents bool
}

type options struct {
	maxSize          int
	strictComponents bool
}

// Option adjusts store construction.
type Option func(*options)

// WithMaxSize declares the environment's initial byte capacity.
func WithMaxSize(bytes int) Option {
	return func(o *options) { o.maxSize = bytes }
}

// WithStrictComponents makes a movement naming a nonexistent component fail
// with UnknownComponentError instead of recording the movement without a
// quantity adjustment.
func WithStrictComponents() Option {
	return func(o *options) { o.strictComponents = true }
}

// Open creates or re-attaches to the environment under dir. Table creation is
// idempotent across restarts; any failure here is fatal to the caller.
func Open(dir string, opts ...Option) (*Store, error) {
	o := options{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create environment directory: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, databaseFile), 0o600, &bolt.Options{
		Timeout:         time.Second,
		InitialMmapSize: o.maxSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open environment: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range tableBuckets() {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create table %s: %w", name, err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, strictComponents: o.strictComponents}, nil
}

// Close releases the environment. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// update runs fn inside the single exclusive write transaction. The commit
// happens only when fn returns nil; otherwise every write in the transaction
// is discarded.
func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	return s.db.Update(fn)
}

// view runs fn against a consistent read-only snapshot of the environment.
func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	return s.db.View(fn)
}
