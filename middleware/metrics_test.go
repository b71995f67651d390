package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	require.NotNil(t, out.Gauge, "expected a counter or gauge")
	return out.GetGauge().GetValue()
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetrics()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	for _, path := range []string{"/healthz", "/healthz", "/fail"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, metricValue(t, m.requestsTotal.WithLabelValues("GET", "/healthz", "200")))
	assert.Equal(t, 1.0, metricValue(t, m.requestsTotal.WithLabelValues("GET", "/fail", "418")))
}

func TestMetricsDomainCounters(t *testing.T) {
	m := NewMetrics()

	m.SliderConnected()
	m.SliderConnected()
	m.SliderDisconnected()
	assert.Equal(t, 1.0, metricValue(t, m.sliderConnections))

	m.SliderEvent("keydown")
	assert.Equal(t, 1.0, metricValue(t, m.sliderEvents.WithLabelValues("keydown")))

	m.ContactSubmission("sent")
	assert.Equal(t, 1.0, metricValue(t, m.contactSubmissions.WithLabelValues("sent")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.SliderConnected()
	m.SliderDisconnected()
	m.SliderEvent("keydown")
	m.ContactSubmission("sent")

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := m.Middleware()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	assert.NoError(t, err)
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.ContactSubmission("sent")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), rec)
	require.NoError(t, m.Handler()(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site_contact_submissions_total")
}
