package server

import (
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers は登録するハンドラ一式
type Handlers struct {
	Products      *handler.ProductHandler
	Cart          *handler.CartHandler
	Auth          *handler.AuthHandler
	Notifications *handler.NotificationHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Products.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Notifications.RegisterRoutes(e)
}
