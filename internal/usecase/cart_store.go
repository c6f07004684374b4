package usecase

import (
	"math"
	"sync"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カートの変更を受け取るリスナー
type CartListener func(view model.CartView)

// CartStore はカートの明細を持つ唯一の場所。
// 不正な入力はエラーにせず何もしない。
type CartStore struct {
	mu        sync.Mutex
	lines     []model.CartLine
	listeners map[int]CartListener
	nextSubID int
}

// DI
func NewCartStore() *CartStore {
	return &CartStore{listeners: make(map[int]CartListener)}
}

// AddToCart はカートに追加（同一商品は数量加算）。
// quantityが1未満、または合計数量がint64を超える場合は何もしない。
func (s *CartStore) AddToCart(product model.Product, quantity int64) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	if quantity > math.MaxInt64-totalItems(s.lines) {
		s.mu.Unlock()
		return
	}
	if i := s.indexOf(product.ID); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, model.CartLine{Product: product, Quantity: quantity})
	}
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	publishCart(listeners, view)
}

// 明細削除（無ければ何もしない）
func (s *CartStore) RemoveFromCart(productID int64) {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i:i], s.lines[i+1:]...)
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	publishCart(listeners, view)
}

// 数量変更（加算ではなく置き換え）。0以下は削除と同じ。
// 合計数量がint64を超える場合は何もしない。
func (s *CartStore) UpdateQuantity(productID int64, quantity int64) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 || s.lines[i].Quantity == quantity {
		s.mu.Unlock()
		return
	}
	if quantity > math.MaxInt64-(totalItems(s.lines)-s.lines[i].Quantity) {
		s.mu.Unlock()
		return
	}
	s.lines[i].Quantity = quantity
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	publishCart(listeners, view)
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return
	}
	s.lines = nil
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	publishCart(listeners, view)
}

// TakeAll は現在のカートを返して空にする（同じロックの中で行う）。
func (s *CartStore) TakeAll() model.CartView {
	s.mu.Lock()
	view := viewOf(s.lines)
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return view
	}
	s.lines = nil
	cleared, listeners := s.snapshotLocked()
	s.mu.Unlock()

	publishCart(listeners, cleared)
	return view
}

// 数量の合計
func (s *CartStore) TotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

// price * quantity の合計（丸めない）
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.lines)
}

// 明細のコピーを追加順で返す
func (s *CartStore) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.lines)
}

func (s *CartStore) View() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s.lines)
}

// Subscribe は変更があるたびにfnを呼ぶ。戻り値で解除する。
func (s *CartStore) Subscribe(fn CartListener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *CartStore) indexOf(productID int64) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// ロック中に呼ぶ。通知はロックを外してから。
func (s *CartStore) snapshotLocked() (model.CartView, []CartListener) {
	listeners := make([]CartListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return viewOf(s.lines), listeners
}

func publishCart(listeners []CartListener, view model.CartView) {
	for _, fn := range listeners {
		fn(view)
	}
}

func viewOf(lines []model.CartLine) model.CartView {
	return model.CartView{
		Lines:      copyLines(lines),
		TotalItems: totalItems(lines),
		TotalPrice: totalPrice(lines),
	}
}

func copyLines(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}

func totalItems(lines []model.CartLine) int64 {
	var n int64
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func totalPrice(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
