package repository

import (
	"context"
	"errors"

	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
)

// キーのプレフィックス（デフォルト）
const DefaultRedisPrefix = "storefront:"

type KVRedisStore struct {
	client redis.Cmdable
	prefix string
}

// DI
func NewKVRedisStore(client redis.Cmdable, prefix string) *KVRedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &KVRedisStore{client: client, prefix: prefix}
}

func (s *KVRedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repo.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// 期限なしで保存（localStorageと同じ）
func (s *KVRedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *KVRedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
