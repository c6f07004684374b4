package usecase_test

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/notify"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSummary(t *testing.T) {
	cart := usecase.NewCartStore()
	cart.AddToCart(product(1, "2.99"), 2)
	cart.AddToCart(product(2, "3.49"), 1)

	s := usecase.NewCheckoutUsecase(cart, nil).Summary()

	assert.Equal(t, int64(3), s.TotalItems)
	assertPrice(t, "9.47", s.Subtotal)
	assertPrice(t, "5.00", s.Shipping)
	assertPrice(t, "0.947", s.Tax)
	assertPrice(t, "15.417", s.Total)
	assert.Equal(t, "15.42", s.Total.StringFixed(2))
}

func TestCheckoutClearsCart(t *testing.T) {
	cart := usecase.NewCartStore()
	cart.AddToCart(product(1, "2.99"), 2)
	rec := notify.NewRecorder(0)

	summary, err := usecase.NewCheckoutUsecase(cart, rec).Checkout(context.Background())

	require.NoError(t, err)
	assertPrice(t, "5.98", summary.Subtotal)
	assert.Equal(t, int64(0), cart.TotalItems())

	toasts := rec.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.LevelSuccess, toasts[0].Level)
}

func TestCheckoutEmptyCart(t *testing.T) {
	rec := notify.NewRecorder(0)

	_, err := usecase.NewCheckoutUsecase(usecase.NewCartStore(), rec).Checkout(context.Background())

	assert.ErrorIs(t, err, usecase.ErrEmptyCart)
	toasts := rec.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.LevelError, toasts[0].Level)
}

// Test: 注文中に追加されても明細は失われない（注文に入るかカートに残る）
func TestCheckoutConcurrentAddsAreNotLost(t *testing.T) {
	cart := usecase.NewCartStore()
	uc := usecase.NewCheckoutUsecase(cart, nil)
	p := product(1, "2.99")

	const adds = 200
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ordered int64
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			cart.AddToCart(p, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			out, err := uc.Checkout(context.Background())
			if err != nil {
				continue
			}
			mu.Lock()
			ordered += out.TotalItems
			mu.Unlock()
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(adds), ordered+cart.TotalItems())
}
