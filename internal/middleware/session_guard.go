package middleware

import (
	"net/http"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserKey = "user" // model.User
)

// ログイン中のユーザーを返すもの（SessionStore）
type SessionReader interface {
	CurrentUser() *model.User
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// 未ログインなら401、ログイン中ならcontextにユーザーを入れる。
func RequireSession(session SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := session.CurrentUser()
			if u == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxUserKey, *u)
			return next(c)
		}
	}
}

// RequireSessionが入れたユーザーを取り出す
func UserFromContext(c echo.Context) (model.User, bool) {
	u, ok := c.Get(CtxUserKey).(model.User)
	return u, ok
}
