package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	session   *usecase.SessionStore
	validator *validator.AuthValidator
}

// DIコンストラクタ
func NewAuthHandler(session *usecase.SessionStore, v *validator.AuthValidator) *AuthHandler {
	return &AuthHandler{session: session, validator: v}
}

// /auth/register のリクエストボディ。
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /auth/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"is_authenticated"`
	IsLoading       bool        `json:"is_loading"`
}

// /auth を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/session", h.current)
	g.GET("/me", h.me, middleware.RequireSession(h.session))
}

// POST /auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.validator.ValidateRegister(req.Name, req.Email, req.Password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	ok, err := h.session.RegisterUser(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
	}

	return c.JSON(http.StatusOK, h.sessionResponse())
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.validator.ValidateLogin(req.Email, req.Password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	if ok := h.session.Login(c.Request().Context(), req.Email, req.Password); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}

	return c.JSON(http.StatusOK, h.sessionResponse())
}

// POST /auth/logout（いつでも成功）
func (h *AuthHandler) logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

// GET /auth/session は未ログインでも200
func (h *AuthHandler) current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessionResponse())
}

func (h *AuthHandler) me(c echo.Context) error {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) sessionResponse() SessionResponse {
	u := h.session.CurrentUser()
	return SessionResponse{
		User:            u,
		IsAuthenticated: u != nil,
		IsLoading:       h.session.IsLoading(),
	}
}
