// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BackendType selects the storage backend.
type BackendType string

const (
	// BackendMemory uses in-memory storage (default, not persistent).
	BackendMemory BackendType = "memory"

	// BackendBadger uses BadgerDB for persistent storage.
	BackendBadger BackendType = "badger"
)

// Factory creates stores based on configuration. The backend is chosen
// exactly once at startup; callers only ever see the Store interface.
type Factory struct {
	db *badger.DB
}

// NewFactory prepares a factory for the given backend. For "badger" it
// opens a BadgerDB at path; for "memory" (or empty) no database is
// opened. Unknown backends are an error rather than a silent fallback.
func NewFactory(backend BackendType, path string) (*Factory, error) {
	factory := &Factory{}

	switch backend {
	case BackendBadger:
		opts := badger.DefaultOptions(path)
		opts.Logger = nil // Suppress BadgerDB logs

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db at %s: %w", path, err)
		}
		factory.db = db
	case BackendMemory, "":
		// Nothing to open.
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}

	return factory, nil
}

// CreateStore creates a Store for the factory's backend, wrapped with
// Prometheus operation instrumentation.
func (f *Factory) CreateStore() Store {
	if f.db != nil {
		return NewInstrumentedStore(NewBadgerStoreFromDB(f.db))
	}
	return NewInstrumentedStore(NewMemoryStore())
}

// Backend reports which backend this factory builds.
func (f *Factory) Backend() BackendType {
	if f.db != nil {
		return BackendBadger
	}
	return BackendMemory
}

// Close closes the underlying BadgerDB if one was opened.
func (f *Factory) Close() error {
	if f.db != nil {
		return f.db.Close()
	}
	return nil
}
