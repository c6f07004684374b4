package model

import "github.com/shopspring/decimal"

// カートの明細
// 1商品につき1行、数量は常に1以上。
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// 小計（price * quantity）
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// カートの読み取り専用スナップショット
type CartView struct {
	Lines      []CartLine      `json:"items"`
	TotalItems int64           `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
