package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nativeblog/internal/lib/logger/sl"

	"github.com/labstack/echo/v4"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	const op = "http.routers.Health"

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := r.Checker.HealthCheck(ctx); err != nil {
		r.log.Error("health check failed", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
