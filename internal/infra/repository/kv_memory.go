package repository

import (
	"context"
	"sync"

	repo "storefront/internal/repository"
)

// プロセス内のキーバリューストア
type KVMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// DI
func NewKVMemoryStore() *KVMemoryStore {
	return &KVMemoryStore{data: make(map[string][]byte)}
}

func (s *KVMemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, repo.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *KVMemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *KVMemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
