package usecase_test

import (
	"math"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) model.Product {
	return model.Product{
		ID:       id,
		Name:     "product",
		Price:    decimal.RequireFromString(price),
		Category: "vegetables",
	}
}

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// Test: 同一商品は1行にまとまり数量が加算される
func TestAddSameProductAccumulates(t *testing.T) {
	s := usecase.NewCartStore()
	p := product(1, "2.99")

	for _, q := range []int64{1, 2, 5} {
		s.AddToCart(p, q)
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(8), lines[0].Quantity)
	assert.Equal(t, int64(8), s.TotalItems())
}

// Test: 数量0以下の追加は何もしない
func TestAddNonPositiveQuantityIsNoop(t *testing.T) {
	s := usecase.NewCartStore()

	s.AddToCart(product(1, "2.99"), 0)
	s.AddToCart(product(1, "2.99"), -3)

	assert.Empty(t, s.Lines())
	assert.Equal(t, int64(0), s.TotalItems())
}

// Test: 0と-1の数量変更は削除
func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int64{0, -1} {
		s := usecase.NewCartStore()
		s.AddToCart(product(1, "2.99"), 2)
		s.AddToCart(product(2, "3.49"), 1)

		s.UpdateQuantity(1, q)

		lines := s.Lines()
		require.Len(t, lines, 1, "quantity %d", q)
		assert.Equal(t, int64(2), lines[0].Product.ID)
	}
}

// Test: 数量変更は置き換え（加算しない）、無いIDは何もしない
func TestUpdateQuantitySetsExactly(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 2)

	s.UpdateQuantity(1, 7)
	s.UpdateQuantity(99, 3)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(7), lines[0].Quantity)
}

// Test: 無いIDの削除は何もしない
func TestRemoveAbsentIsNoop(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 2)
	before := s.View()

	s.RemoveFromCart(42)

	after := s.View()
	assert.Equal(t, len(before.Lines), len(after.Lines))
	assert.Equal(t, before.TotalItems, after.TotalItems)
	assert.True(t, before.TotalPrice.Equal(after.TotalPrice))
}

// Test: 合計は追加順に依存しないが、明細は追加順
func TestTotalPriceIndependentOfOrder(t *testing.T) {
	a := usecase.NewCartStore()
	a.AddToCart(product(1, "2.99"), 2)
	a.AddToCart(product(2, "3.49"), 1)
	a.AddToCart(product(3, "1.99"), 4)

	b := usecase.NewCartStore()
	b.AddToCart(product(3, "1.99"), 4)
	b.AddToCart(product(1, "2.99"), 2)
	b.AddToCart(product(2, "3.49"), 1)

	assert.True(t, a.TotalPrice().Equal(b.TotalPrice()))
	assert.Equal(t, a.TotalItems(), b.TotalItems())

	ids := func(lines []model.CartLine) []int64 {
		out := make([]int64, 0, len(lines))
		for _, l := range lines {
			out = append(out, l.Product.ID)
		}
		return out
	}
	assert.Equal(t, []int64{1, 2, 3}, ids(a.Lines()))
	assert.Equal(t, []int64{3, 1, 2}, ids(b.Lines()))
}

func TestClearCartZeroesTotals(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 2)
	s.AddToCart(product(2, "3.49"), 1)

	s.ClearCart()

	assert.Equal(t, int64(0), s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
	assert.Empty(t, s.Lines())
}

// Test: 追加→数量変更→削除のシナリオ
func TestCartScenario(t *testing.T) {
	s := usecase.NewCartStore()

	s.AddToCart(product(1, "2.99"), 2)
	s.AddToCart(product(2, "3.49"), 1)
	assert.Equal(t, int64(3), s.TotalItems())
	assertPrice(t, "9.47", s.TotalPrice())

	s.UpdateQuantity(1, 5)
	assert.Equal(t, int64(6), s.TotalItems())
	assertPrice(t, "18.44", s.TotalPrice())

	s.RemoveFromCart(2)
	assert.Equal(t, int64(5), s.TotalItems())
	assertPrice(t, "14.95", s.TotalPrice())
}

// Test: 返した明細を書き換えてもストアは変わらない
func TestLinesAreCopies(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 2)

	lines := s.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, int64(2), s.TotalItems())
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := usecase.NewCartStore()

	var views []model.CartView
	unsubscribe := s.Subscribe(func(v model.CartView) {
		views = append(views, v)
	})

	s.AddToCart(product(1, "2.99"), 2)
	s.RemoveFromCart(99) // 変化なし
	s.UpdateQuantity(1, 3)

	unsubscribe()
	s.ClearCart()

	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].TotalItems)
	assert.Equal(t, int64(3), views[1].TotalItems)
	assertPrice(t, "8.97", views[1].TotalPrice)
}

// Test: 数量がint64を超える追加・変更は何もしない（負の数量にならない）
func TestQuantityOverflowIsNoop(t *testing.T) {
	s := usecase.NewCartStore()
	p := product(1, "2.99")

	s.AddToCart(p, math.MaxInt64)
	s.AddToCart(p, 2)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(math.MaxInt64), lines[0].Quantity)
	assert.Equal(t, int64(math.MaxInt64), s.TotalItems())

	// 別商品でも合計があふれる追加はしない
	s.AddToCart(product(2, "3.49"), 1)
	assert.Len(t, s.Lines(), 1)
	assert.True(t, s.TotalPrice().IsPositive())
}

func TestUpdateQuantityOverflowIsNoop(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 5)
	s.AddToCart(product(2, "3.49"), 1)

	s.UpdateQuantity(2, math.MaxInt64)
	assert.Equal(t, int64(6), s.TotalItems())

	s.UpdateQuantity(1, math.MaxInt64-1)
	assert.Equal(t, int64(math.MaxInt64), s.TotalItems())
	for _, l := range s.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, int64(1))
	}
}

func TestTakeAllReturnsAndClears(t *testing.T) {
	s := usecase.NewCartStore()
	s.AddToCart(product(1, "2.99"), 2)
	s.AddToCart(product(2, "3.49"), 1)

	var last model.CartView
	s.Subscribe(func(v model.CartView) { last = v })

	v := s.TakeAll()
	assert.Equal(t, int64(3), v.TotalItems)
	assertPrice(t, "9.47", v.TotalPrice)
	require.Len(t, v.Lines, 2)

	assert.Empty(t, s.Lines())
	assert.Equal(t, int64(0), last.TotalItems)

	empty := s.TakeAll()
	assert.Empty(t, empty.Lines)
}
