package model

import "time"

// キーバリューストアの1件（postgres用）
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
