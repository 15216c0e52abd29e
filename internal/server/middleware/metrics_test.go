package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func makeRequest(e *echo.Echo, path string, rec http.ResponseWriter) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	e.ServeHTTP(rec, req)
}

func clearRegisteredMetrics(t *testing.T, conf MetricsConfig) {
	_, err := registerHttpMetrics(conf)
	if err == nil {
		return
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		httpMetrics := are.ExistingCollector.(*prometheus.HistogramVec)
		httpMetrics.Reset()
		return
	}
	t.Errorf("unexpected error %v", err)
}

func TestPrometheusMiddleware(t *testing.T) {
	clearRegisteredMetrics(t, DefaultMetricsConfig)
	e := echo.New()
	e.Use(Metrics())

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	})

	rec := httptest.NewRecorder()
	for i := 0; i < 10; i++ {
		makeRequest(e, "/test", rec)
	}
	for i := 0; i < 3; i++ {
		makeRequest(e, "/does-not-exist", rec)
	}

	makeRequest(e, "/metrics", rec)
	body := rec.Body.String()
	if !strings.Contains(body, `request_duration_seconds_count{code="200",method="GET",path="/test"} 10`) {
		t.Error("GET /test not observed")
	}
	if !strings.Contains(body, `request_duration_seconds_count{code="404",method="GET",path="/not-found"} 3`) {
		t.Error("404s not collapsed under /not-found")
	}
}
