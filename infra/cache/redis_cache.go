package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisQuoteCache implements provider.QuoteCache over Redis.
type RedisQuoteCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisQuoteCache creates a RedisQuoteCache from redis options.
func NewRedisQuoteCache(opt *redis.Options, prefix string, logger *slog.Logger) *RedisQuoteCache {
	return &RedisQuoteCache{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

func (r *RedisQuoteCache) key(symbol string) string {
	return r.prefix + symbol
}

// Get implements provider.QuoteCache.
func (r *RedisQuoteCache) Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	val, err := r.client.Get(ctx, r.key(symbol)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	price, err := decimal.NewFromString(val)
	if err != nil {
		// A corrupt entry is treated as a miss and overwritten on Set.
		r.logger.Warn("corrupt quote cache entry", "symbol", symbol, "value", val)
		return decimal.Zero, false, nil
	}
	return price, true, nil
}

// Set implements provider.QuoteCache.
func (r *RedisQuoteCache) Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(symbol), price.String(), ttl).Err()
}
