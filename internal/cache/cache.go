package cache

import (
	"context"
	"time"
)

const (
	// ForEver tells the cache to keep an entry until the process exits or the
	// entry is overwritten or deleted.
	ForEver = 0 * time.Second
)

// Cache interface proposes an interface that any cache should adhere.
// Verification session state (pending phone codes, presentation sessions)
// lives behind this interface so protocols depend on a capability, not on a
// process-wide map.
type Cache interface {
	// Set sets a value in the cache accessible by the key. The ttl param is the
	// maximum time to live in the cache. ttl=0 means the entry could be cached forever
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get searches for a non expired entry in the cache and stores the result in the
	// value variable sent as reference. You should only trust value if found is true
	Get(ctx context.Context, key string, value any) bool
	// Exists tells whether a key exists in the cache with a valid ttl
	Exists(ctx context.Context, key string) bool
	// Delete removes an entry from the cache
	Delete(ctx context.Context, key string) error
}
