package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nativeblog/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_CountsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMetrics)
	e.GET("/api/get-posts/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/get-posts/:id", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-posts/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestPrometheusMetrics_UsesHTTPErrorCode(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMetrics)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "403")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
