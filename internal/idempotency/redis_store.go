package idempotency

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/eaglebank/bankingsim/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	lockPrefix     = "idempotency:lock:"
	responsePrefix = "idempotency:response:"
)

// RedisStore shares idempotency slots between processes. A reservation is a
// SETNX lock key; a completed slot also has its response under a second key.
type RedisStore struct {
	client    *goredis.Client
	responses *redis.ViewCache[Response]
	ttl       time.Duration
}

func NewRedisStore(client *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		responses: redis.NewViewCache[Response](client, responsePrefix, ttl),
		ttl:       ttl,
	}
}

func (s *RedisStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockPrefix+key, "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Response, bool, error) {
	return s.responses.Get(ctx, key)
}

// Save stores resp and refreshes the lock so both keys expire together. If
// the lock cannot be refreshed the response is removed again, leaving the
// slot reserved for the caller to release.
func (s *RedisStore) Save(ctx context.Context, key string, resp Response) error {
	if err := s.responses.Set(ctx, key, &resp); err != nil {
		return err
	}
	if err := s.client.Set(ctx, lockPrefix+key, "1", s.ttl).Err(); err != nil {
		if derr := s.responses.Delete(ctx, key); derr != nil {
			log.Printf("Failed to drop response for idempotency key %q: %v", key, derr)
		}
		return fmt.Errorf("refresh idempotency lock: %w", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, lockPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
