// Package cache memoizes list and detail reads for a fixed TTL and lets writers drop
// the affected entries.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultTTL is how long a populated entry stays valid.
const DefaultTTL = time.Hour

// Store keeps opaque values under string keys until they expire.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Kind string

const (
	KindEvent  Kind = "event"
	KindRaffle Kind = "raffle"
)

// Key names either the whole collection of a kind or a single record of it.
type Key struct {
	kind Kind
	id   uint
	all  bool
}

func Collection(kind Kind) Key {
	return Key{kind: kind, all: true}
}

func Record(kind Kind, id uint) Key {
	return Key{kind: kind, id: id}
}

// String renders the storage key: "all_events" for a collection, "event::7" for a record.
func (k Key) String() string {
	if k.all {
		return "all_" + string(k.kind) + "s"
	}

	return fmt.Sprintf("%s::%d", k.kind, k.id)
}

type Cache struct {
	store Store
	ttl   time.Duration
}

func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		store: store,
		ttl:   ttl,
	}
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Remember returns the value cached under key, or runs loader, caches its result and
// returns it. A loader error is returned as is and nothing is cached. Store failures
// are logged and the loader result is served.
func Remember[T any](ctx context.Context, c *Cache, key Key, loader func(ctx context.Context) (T, error)) (T, error) {
	k := key.String()

	raw, ok, err := c.store.Get(ctx, k)
	if err != nil {
		zap.L().Warn("cache read failed", zap.String("key", k), zap.Error(err))
	}
	if ok {
		var cached T
		if err = json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		zap.L().Warn("cache entry unreadable", zap.String("key", k), zap.Error(err))
	}

	value, err := loader(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("cache entry not encodable", zap.String("key", k), zap.Error(err))
		return value, nil
	}
	if err = c.store.Set(ctx, k, encoded, c.ttl); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", k), zap.Error(err))
	}

	return value, nil
}

// Forget drops the given entries. Failures are logged, never returned.
func (c *Cache) Forget(ctx context.Context, keys ...Key) {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.String())
	}

	if err := c.store.Delete(ctx, names...); err != nil {
		zap.L().Warn("cache invalidation failed", zap.Strings("keys", names), zap.Error(err))
	}
}

// ForgetCollection is the invalidation a create needs.
func (c *Cache) ForgetCollection(ctx context.Context, kind Kind) {
	c.Forget(ctx, Collection(kind))
}

// ForgetRecord is the invalidation an update or delete of id needs.
func (c *Cache) ForgetRecord(ctx context.Context, kind Kind, id uint) {
	c.Forget(ctx, Collection(kind), Record(kind, id))
}
