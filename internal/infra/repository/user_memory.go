package repository

import (
	"context"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type userMemoryRepository struct {
	mu    sync.RWMutex
	users []model.RegisteredUser
}

// DI
// seedは起動時に登録済みのユーザー。
func NewUserMemoryRepository(seed ...model.RegisteredUser) repo.UserRepository {
	users := make([]model.RegisteredUser, len(seed))
	copy(users, seed)
	return &userMemoryRepository{users: users}
}

// emailでユーザーを1件取得（大文字小文字も区別）
func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (model.RegisteredUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.RegisteredUser{}, repo.ErrUserNotFound
}

// Create はユーザーを末尾に追加
func (r *userMemoryRepository) Create(ctx context.Context, user model.RegisteredUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repo.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *userMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
