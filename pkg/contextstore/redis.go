package contextstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shopmate/shopmate/pkg/models"
)

// Force compiler to validate that RedisStore implements the ContextStore interface.
var _ models.ContextStore = &RedisStore{}

// RedisStore keeps one JSON value per user id. Updates are read-modify-write
// without a lock: concurrent updates for the same user are last-write-wins.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis at addr and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, NewStoreError("failed to connect to redis", err)
	}
	log.Info("Connected to redis context store at ", addr)
	return &RedisStore{client: client}, nil
}

func contextKey(userID string) string {
	return fmt.Sprintf("shopmate:context:%s", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*models.UserContext, error) {
	val, err := s.client.Get(ctx, contextKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.NewUserContext(), nil
	}
	if err != nil {
		return nil, NewStoreError("failed to get user context", err)
	}

	var uc models.UserContext
	if err := json.Unmarshal([]byte(val), &uc); err != nil {
		return nil, NewStoreError("failed to unmarshal user context", err)
	}
	return &uc, nil
}

func (s *RedisStore) Update(
	ctx context.Context,
	userID string,
	fn func(*models.UserContext),
) (*models.UserContext, error) {
	uc, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	fn(uc)

	payload, err := json.Marshal(uc)
	if err != nil {
		return nil, NewStoreError("failed to marshal user context", err)
	}
	if err := s.client.Set(ctx, contextKey(userID), payload, 0).Err(); err != nil {
		return nil, NewStoreError("failed to set user context", err)
	}
	return uc, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
