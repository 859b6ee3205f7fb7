package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/service"
	mockSvc "pawtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newAuthEcho(tokenSvc service.TokenService, required entity.Role) *echo.Echo {
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, userID.String())
	}, m.Authenticate, m.RequireRole(required))

	return e
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	e := newAuthEcho(tokens, entity.RoleUser)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(e, "").Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(e, "Basic dXNlcjpwdw==").Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokens.EXPECT().ValidateAccessToken("expired").Return(nil, domainerrors.ErrTokenInvalid).Once()
		assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer expired").Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		tokens.EXPECT().ValidateAccessToken("anonymous").Return(&service.Claims{Roles: []string{"user"}}, nil).Once()
		assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer anonymous").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		userID := uuid.New()
		tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil).Once()

		rec := serve(e, "Bearer good")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name   string
		roles  []string
		status int
	}{
		{name: "admin passes", roles: []string{"admin"}, status: http.StatusOK},
		{name: "moderator is below admin", roles: []string{"user", "moderator"}, status: http.StatusForbidden},
		{name: "unknown roles are dropped", roles: []string{"superuser"}, status: http.StatusForbidden},
		{name: "no roles", roles: nil, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tokens.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: uuid.New(), Roles: tt.roles}, nil)

			rec := serve(newAuthEcho(tokens, entity.RoleAdmin), "Bearer token")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
