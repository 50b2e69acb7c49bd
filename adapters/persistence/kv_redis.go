package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
)

type redisKVStore struct {
	rdb *redis.Client
}

func NewRedisKVStore(rdb *redis.Client) kv.Store {
	return &redisKVStore{rdb: rdb}
}

func (s *redisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *redisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *redisKVStore) SetMany(ctx context.Context, entries map[string]string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, key, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write %d keys in transaction: %w", len(entries), err)
	}
	return nil
}

func (s *redisKVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to remove keys %v: %w", keys, err)
	}
	return nil
}

func (s *redisKVStore) Close() error {
	return s.rdb.Close()
}
