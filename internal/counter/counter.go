// Package counter issues shop-scoped sequential integers for product
// numbering.
package counter

import (
	"context"
	"fmt"

	"github.com/mirevo/shop-catalog-service/pkg/cache"
)

type Sequence interface {
	Next(ctx context.Context, shopID string) (int64, error)
}

// RedisSequence backs the counter with a redis INCR per shop.
type RedisSequence struct {
	cache *cache.RedisClient
}

func NewRedisSequence(cache *cache.RedisClient) *RedisSequence {
	return &RedisSequence{cache: cache}
}

func (s *RedisSequence) Next(ctx context.Context, shopID string) (int64, error) {
	key := fmt.Sprintf("counter:product_number:%s", shopID)
	return s.cache.Client.Incr(ctx, key).Result()
}
