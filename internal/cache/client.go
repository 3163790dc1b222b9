package cache

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/log"
	"github.com/Jrokz2315/SecureID/internal/redis"
)

// NewCacheClient creates a new session store based on the configuration
func NewCacheClient(ctx context.Context, cfg config.Cache) (Cache, error) {
	switch cfg.Provider {
	case config.CacheProviderMemory, "":
		return NewMemoryCache(), nil
	case config.CacheProviderRedis:
		rdb, err := redis.Open(ctx, cfg.Url)
		if err != nil {
			log.Error(ctx, "cannot connect to redis", "err", err, "host", cfg.Url)
			return nil, err
		}
		return NewRedisCache(rdb), nil
	case config.CacheProviderValKey:
		client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{cfg.Url}})
		if err != nil {
			log.Error(ctx, "cannot connect to valkey", "err", err, "host", cfg.Url)
			return nil, err
		}
		return NewValKeyCache(client), nil
	default:
		return nil, fmt.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
