// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package poster

import (
	"context"
	"time"

	"github.com/tomtom215/movrec/internal/cache"
)

// Entry is a cached lookup answer. Found is false for titles the upstream
// has no poster for; those are cached too.
type Entry struct {
	URL       string    `json:"url,omitempty"`
	Found     bool      `json:"found"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store caches lookup answers by normalised title and year.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, e Entry, ttl time.Duration) error
	Close() error
}

// MemoryStore is a bounded in-process Store.
type MemoryStore struct {
	lru *cache.LRU[string, Entry]
}

// NewMemoryStore returns a MemoryStore holding at most size entries for ttl.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: cache.NewLRU[string, Entry](size, ttl)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	e, ok := m.lru.Get(key)
	return e, ok, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, e Entry, ttl time.Duration) error {
	m.lru.AddWithTTL(key, e, ttl)
	return nil
}

// Purge drops expired entries.
func (m *MemoryStore) Purge() int {
	return m.lru.CleanupExpired()
}

func (m *MemoryStore) Close() error {
	m.lru.Clear()
	return nil
}
