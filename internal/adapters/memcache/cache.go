// Package memcache implements domain.Cache in process memory, used when no
// Redis address is configured. Values are stored as JSON so the adapter
// behaves byte-for-byte like the Redis one.
package memcache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"staybook/internal/adapters/observability"
)

type Cache struct{ c *gocache.Cache }

func New(defaultTTL time.Duration) *Cache {
	return &Cache{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(v.([]byte), dst)
}

func (m *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("memory", "set")
	m.c.Set(key, b, time.Duration(ttlSec)*time.Second)
	return nil
}

func (m *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("memory", "del")
	m.c.Delete(key)
	return nil
}
