package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"redpotion-core/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisMenuCache keeps resolved menus hot. Cache failures are tolerated; the
// database remains authoritative.
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) MenuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

func (c *RedisMenuCache) GetMenu(ctx context.Context, key string) (*domain.Menu, bool) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[catalog-svc] menu cache get %s: %v", key, err)
		}
		return nil, false
	}

	var menu domain.Menu
	if err := json.Unmarshal(payload, &menu); err != nil {
		log.Printf("[catalog-svc] menu cache decode %s: %v", key, err)
		return nil, false
	}
	return &menu, true
}

func (c *RedisMenuCache) SetMenu(ctx context.Context, key string, menu *domain.Menu) {
	payload, err := json.Marshal(menu)
	if err != nil {
		log.Printf("[catalog-svc] menu cache encode %s: %v", key, err)
		return
	}
	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		log.Printf("[catalog-svc] menu cache set %s: %v", key, err)
	}
}
