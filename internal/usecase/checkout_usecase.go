package usecase

import (
	"context"
	"errors"

	"storefront/internal/notify"

	"github.com/shopspring/decimal"
)

// 空のカートでは注文できない
var ErrEmptyCart = errors.New("cart is empty")

var (
	// 送料（一律）
	ShippingFee = decimal.RequireFromString("5.00")
	// 税率10%
	TaxRate = decimal.RequireFromString("0.1")
)

const (
	msgCheckoutSuccess = "Thank you for your order! This is a demo, so no actual purchase was made."
	msgCartEmpty       = "Your cart is empty"
)

// 注文内容のまとめ（丸めは表示側）
type OrderSummary struct {
	TotalItems int64           `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}

// CheckoutUsecase はデモ用の注文（決済なし）。
type CheckoutUsecase struct {
	cart     *CartStore
	notifier notify.Notifier
}

// DI
func NewCheckoutUsecase(cart *CartStore, notifier notify.Notifier) *CheckoutUsecase {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &CheckoutUsecase{cart: cart, notifier: notifier}
}

func (u *CheckoutUsecase) Summary() OrderSummary {
	view := u.cart.View()
	return summarize(view.TotalItems, view.TotalPrice)
}

// Checkout はまとめを返してカートを空にする。
func (u *CheckoutUsecase) Checkout(ctx context.Context) (OrderSummary, error) {
	// まとめと空にする処理の間に追加が入らないようにする
	view := u.cart.TakeAll()
	if view.TotalItems == 0 {
		notify.Error(ctx, u.notifier, msgCartEmpty)
		return OrderSummary{}, ErrEmptyCart
	}
	summary := summarize(view.TotalItems, view.TotalPrice)

	notify.Success(ctx, u.notifier, msgCheckoutSuccess)
	return summary, nil
}

func summarize(items int64, subtotal decimal.Decimal) OrderSummary {
	tax := subtotal.Mul(TaxRate)
	return OrderSummary{
		TotalItems: items,
		Subtotal:   subtotal,
		Shipping:   ShippingFee,
		Tax:        tax,
		Total:      subtotal.Add(ShippingFee).Add(tax),
	}
}
