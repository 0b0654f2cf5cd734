package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store backed by an expiring LRU.
type MemoryStore struct {
	lru *expirable.LRU[string, memoryEntry]
}

// NewMemoryStore keeps at most size entries (0 means unbounded), none of them longer
// than maxTTL.
func NewMemoryStore(size int, maxTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.lru.Remove(key)
		return nil, false, nil
	}

	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.lru.Add(key, memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.lru.Remove(key)
	}

	return nil
}
