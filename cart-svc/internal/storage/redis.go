package storage

import (
	"context"
	"encoding/json"
	"log"

	"redpotion-core/cart-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore persists the full line-item list per (role, restaurant) key.
// Storage failures are logged and swallowed: the in-memory cart stays the
// source of truth for the session even when persistence is unavailable.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func (s *RedisCartStore) CartKey(restaurantID, role string) string {
	return "redpotion_cart_" + role + "_" + restaurantID
}

func (s *RedisCartStore) Load(ctx context.Context, restaurantID, role string) []domain.CartLineItem {
	key := s.CartKey(restaurantID, role)

	payload, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return []domain.CartLineItem{}
	}
	if err != nil {
		log.Printf("[cart-svc] load %s: %v", key, err)
		return []domain.CartLineItem{}
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Printf("[cart-svc] corrupt cart payload at %s: %v", key, err)
		return []domain.CartLineItem{}
	}
	if items == nil {
		items = []domain.CartLineItem{}
	}
	return items
}

func (s *RedisCartStore) Save(ctx context.Context, restaurantID, role string, items []domain.CartLineItem) {
	key := s.CartKey(restaurantID, role)

	payload, err := json.Marshal(items)
	if err != nil {
		log.Printf("[cart-svc] marshal cart %s: %v", key, err)
		return
	}

	if err := s.Client.Set(ctx, key, payload, 0).Err(); err != nil {
		log.Printf("[cart-svc] save %s: %v", key, err)
	}
}

func (s *RedisCartStore) Clear(ctx context.Context, restaurantID, role string) {
	key := s.CartKey(restaurantID, role)
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		log.Printf("[cart-svc] clear %s: %v", key, err)
	}
}
