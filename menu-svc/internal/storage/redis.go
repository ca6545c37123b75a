package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant-ordering/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each cart as a JSON document that expires after TTL
// of inactivity.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(id string) string {
	return "cart:" + id
}

// LoadCart returns an empty cart when none is stored under id.
func (s *RedisCartStore) LoadCart(ctx context.Context, id string) (*domain.Cart, error) {
	payload, err := s.Client.Get(ctx, s.CartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(id), nil
	}
	if err != nil {
		return nil, err
	}

	cart := domain.NewCart(id)
	if err := json.Unmarshal(payload, cart); err != nil {
		return nil, err
	}
	cart.ID = id
	return cart, nil
}

func (s *RedisCartStore) SaveCart(ctx context.Context, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.CartKey(cart.ID), payload, s.TTL).Err()
}
