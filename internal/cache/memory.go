package cache

import (
	"context"
	"reflect"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	memoryDefTTL        = 60 * time.Minute
	memoryCleanUpPeriod = 1 * time.Minute
)

type memory struct {
	c *gocache.Cache
}

// NewMemoryCache returns a basic in memory cache. It is the default session
// store: entries do not survive a process restart.
func NewMemoryCache() Cache {
	return &memory{
		c: gocache.New(memoryDefTTL, memoryCleanUpPeriod),
	}
}

// Set sets an item in the in memory cache
func (m *memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl == ForEver {
		ttl = gocache.NoExpiration
	}
	m.c.Set(key, value, ttl)
	return nil
}

// Get retrieves a cache entry in value, which must be passed as a reference,
// and returns whether the entry was found
func (m *memory) Get(_ context.Context, key string, value any) bool {
	mVal, exists := m.c.Get(key)
	if !exists {
		return false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	sv := reflect.ValueOf(mVal)
	if !sv.Type().AssignableTo(rv.Elem().Type()) {
		return false
	}
	rv.Elem().Set(sv)
	return true
}

// Exists returns true if the key exists in the cache
func (m *memory) Exists(_ context.Context, key string) bool {
	_, found := m.c.Get(key)
	return found
}

// Delete removes an entry from the cache
func (m *memory) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
