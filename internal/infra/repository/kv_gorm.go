package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVGormStore struct {
	db *gorm.DB
}

// DI
func NewKVGormStore(db *gorm.DB) *KVGormStore {
	return &KVGormStore{db: db}
}

func (s *KVGormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e model.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

// 同じキーは上書き
func (s *KVGormStore) Set(ctx context.Context, key string, value []byte) error {
	e := model.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

// 0件削除もエラーにしない
func (s *KVGormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{}).Error
}
