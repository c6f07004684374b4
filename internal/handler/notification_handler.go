package handler

import (
	"net/http"

	"storefront/internal/notify"

	"github.com/labstack/echo/v4"
)

// toastをUIに渡す
type NotificationHandler struct {
	recorder *notify.Recorder
}

// DI
func NewNotificationHandler(recorder *notify.Recorder) *NotificationHandler {
	return &NotificationHandler{recorder: recorder}
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications", h.drain)
}

// 未読を返して空にする
func (h *NotificationHandler) drain(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.recorder.Drain()})
}
