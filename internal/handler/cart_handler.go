package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /cartのHTTP
type CartHandler struct {
	cart     *usecase.CartStore
	products *usecase.ProductUsecase
	checkout *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(cart *usecase.CartStore, products *usecase.ProductUsecase, checkout *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cart: cart, products: products, checkout: checkout}
}

// quantity省略時は1
type AddCartRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity"`
}

type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// total_priceは丸めない値、displayは表示用（小数2桁）
type CartResponse struct {
	Items             []CartItemResponse `json:"items"`
	TotalItems        int64              `json:"total_items"`
	TotalPrice        decimal.Decimal    `json:"total_price"`
	TotalPriceDisplay string             `json:"total_price_display"`
}

type OrderSummaryResponse struct {
	usecase.OrderSummary
	SubtotalDisplay string `json:"subtotal_display"`
	ShippingDisplay string `json:"shipping_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`
}

// /cart を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.DELETE("", h.clearCart)
	g.GET("/summary", h.summary)
	g.POST("/checkout", h.checkoutCart)
	g.PATCH("/:productId", h.patchItem)
	g.DELETE("/:productId", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, toCartResponse(h.cart.View()))
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// 商品チェック
	p, err := h.products.GetProductDetail(c.Request().Context(), req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	qty := int64(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	// 1未満はストア側で無視される
	h.cart.AddToCart(p, qty)

	return c.JSON(http.StatusOK, toCartResponse(h.cart.View()))
}

func (h *CartHandler) patchItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity is required"})
	}

	h.cart.UpdateQuantity(productID, *req.Quantity)

	return c.JSON(http.StatusOK, toCartResponse(h.cart.View()))
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.cart.RemoveFromCart(productID)

	return c.JSON(http.StatusOK, toCartResponse(h.cart.View()))
}

func (h *CartHandler) clearCart(c echo.Context) error {
	h.cart.ClearCart()
	return c.JSON(http.StatusOK, toCartResponse(h.cart.View()))
}

func (h *CartHandler) summary(c echo.Context) error {
	return c.JSON(http.StatusOK, toOrderSummaryResponse(h.checkout.Summary()))
}

func (h *CartHandler) checkoutCart(c echo.Context) error {
	out, err := h.checkout.Checkout(c.Request().Context())
	if errors.Is(err, usecase.ErrEmptyCart) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponse(out))
}

func toCartResponse(v model.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, CartItemResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}

	return CartResponse{
		Items:             items,
		TotalItems:        v.TotalItems,
		TotalPrice:        v.TotalPrice,
		TotalPriceDisplay: v.TotalPrice.StringFixed(2),
	}
}

func toOrderSummaryResponse(s usecase.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderSummary:    s,
		SubtotalDisplay: s.Subtotal.StringFixed(2),
		ShippingDisplay: s.Shipping.StringFixed(2),
		TaxDisplay:      s.Tax.StringFixed(2),
		TotalDisplay:    s.Total.StringFixed(2),
	}
}
