package model

import "github.com/shopspring/decimal"

// 商品（カタログから渡される、変更しない）
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Image       string          `gorm:"type:text" json:"image"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
}
