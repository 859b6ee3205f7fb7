package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pawtrack/internal/delivery/api/response"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service and database liveness
type HealthHandler struct {
	checker service.HealthChecker
	logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(checker service.HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.Check(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
