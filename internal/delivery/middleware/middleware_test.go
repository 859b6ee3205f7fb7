package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		ctx := c.Request().Context()
		if deliverycontext.GetLogger(ctx) == nil {
			return c.String(http.StatusInternalServerError, "no request logger")
		}

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(ctx))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("keeps a client supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "trace-123", rec.Body.String())
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
		assert.Equal(t, got, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("success is quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("success is logged in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?page=2", nil))

		out := buf.String()
		assert.Contains(t, out, `"status":200`)
		assert.Contains(t, out, `"query":"page=2"`)
		assert.Contains(t, out, `"request_id"`)
	})

	t.Run("failures are logged with the final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":502`)
	})
}
