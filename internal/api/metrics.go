package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are registered on a private registry so tests can create as many
// as they like.
type Metrics struct {
	Requests    *prometheus.CounterVec
	BooksLoaded prometheus.Gauge
	LoadSeconds prometheus.Gauge

	registry *prometheus.Registry
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookclub",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		BooksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bookclub",
			Name:      "books_loaded",
			Help:      "Rows in the loaded book list.",
		}),
		LoadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bookclub",
			Name:      "workbook_load_seconds",
			Help:      "Time spent loading the workbook.",
		}),
		registry: registry,
	}
	registry.MustRegister(m.Requests, m.BooksLoaded, m.LoadSeconds)
	return m
}

// Middleware counts requests per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			code := c.Response().Status
			if err != nil {
				code = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					code = he.Code
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
			return err
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
