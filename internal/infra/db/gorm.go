package db

import (
	"storefront/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// 商品とキーバリューのテーブルを作る
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.KVEntry{},
	)
}
