// Package cache provides a Redis read-through cache for transporter
// resolution. The mapping table changes rarely while every submission hits
// it, so cached verdicts are kept for a configurable TTL.
package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"omsbridge/internal/port"
)

// ErrCacheMiss is returned by a Store when a key has no cached value.
var ErrCacheMiss = errors.New("cache miss")

// Store is the minimal key/value surface the cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a go-redis client as a Store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

type cachedRegistry struct {
	inner port.TransporterRegistry
	store Store
	ttl   time.Duration
}

// NewTransporterCache fronts a TransporterRegistry with a Store. Cache
// failures degrade to direct lookups; they never fail a submission.
func NewTransporterCache(inner port.TransporterRegistry, store Store, ttl time.Duration) port.TransporterRegistry {
	return &cachedRegistry{inner: inner, store: store, ttl: ttl}
}

func (c *cachedRegistry) Resolve(ctx context.Context, transporterID string) (bool, error) {
	key := "transporter:" + transporterID

	val, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		return val == "1", nil
	case !errors.Is(err, ErrCacheMiss):
		log.Printf("transporterCache: get %q: %v", key, err)
	}

	ok, err := c.inner.Resolve(ctx, transporterID)
	if err != nil {
		return false, err
	}

	cached := "0"
	if ok {
		cached = "1"
	}
	if err := c.store.Set(ctx, key, cached, c.ttl); err != nil {
		log.Printf("transporterCache: set %q: %v", key, err)
	}
	return ok, nil
}
