package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

// New はルート登録済みのechoを返す
func New(logger *slog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, h)
	return e
}

// Start はctxが終わるまで待ち受け、終わったら止める。
func Start(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("server stopping")
	return e.Shutdown(shutdownCtx)
}
