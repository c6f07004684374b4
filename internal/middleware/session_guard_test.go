package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	user *model.User
}

func (f *fakeSession) CurrentUser() *model.User { return f.user }

func runGuard(t *testing.T, session SessionReader) (*httptest.ResponseRecorder, *model.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *model.User
	h := RequireSession(session)(func(c echo.Context) error {
		u, ok := UserFromContext(c)
		require.True(t, ok)
		seen = &u
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	return rec, seen
}

func TestRequireSessionAnonymous(t *testing.T) {
	rec, seen := runGuard(t, &fakeSession{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
	assert.Nil(t, seen)
}

func TestRequireSessionAuthenticated(t *testing.T) {
	rec, seen := runGuard(t, &fakeSession{user: &model.User{ID: 1, Name: "Test User", Email: "test@example.com"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(1), seen.ID)
}
