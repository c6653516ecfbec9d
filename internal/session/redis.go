// Package session keeps cookie sessions in Redis as session:<id> -> user id.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

type RedisStore struct {
	client   *redis.Client
	ttl      time.Duration
	strategy retry.Strategy
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	id := uuid.New().String()
	if err := s.client.SetWithExpirationAndRetry(ctx, s.strategy, keyPrefix+id, userID, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Resolve returns the user id owning session id and slides its expiry.
func (s *RedisStore) Resolve(ctx context.Context, id string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, redis.NoMatches) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}

	if err = s.client.Expire(ctx, keyPrefix+id, s.ttl); err != nil {
		return "", fmt.Errorf("refresh session: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DelWithRetry(ctx, s.strategy, keyPrefix+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
