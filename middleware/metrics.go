package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "site"

// Metrics holds the Prometheus collectors of the site. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	sliderConnections  prometheus.Gauge
	sliderEvents       *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec
}

// NewMetrics registers the site collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		sliderConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "slider_connections",
			Help:      "Open slider websocket connections",
		}),

		sliderEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "slider_events_total",
			Help:      "Input events received on slider sockets by kind",
		}, []string{"kind"}),

		contactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}
}

// Middleware records request count and latency per route template
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// SliderConnected increments the open slider socket gauge
func (m *Metrics) SliderConnected() {
	if m != nil {
		m.sliderConnections.Inc()
	}
}

// SliderDisconnected decrements the open slider socket gauge
func (m *Metrics) SliderDisconnected() {
	if m != nil {
		m.sliderConnections.Dec()
	}
}

// SliderEvent counts one input event received from a slider socket
func (m *Metrics) SliderEvent(kind string) {
	if m != nil {
		m.sliderEvents.WithLabelValues(kind).Inc()
	}
}

// ContactSubmission counts one contact submission outcome
// (sent, invalid, delivery_error, config_error).
func (m *Metrics) ContactSubmission(outcome string) {
	if m != nil {
		m.contactSubmissions.WithLabelValues(outcome).Inc()
	}
}
