package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketplace-api/models"
)

// Metrics owns a private Prometheus registry for the API.
//
// Registers:
//
//	marketplace_http_requests_total{method,route,status}
//	marketplace_http_request_duration_seconds{method,route}
//	marketplace_catalog_listings, marketplace_catalog_requests
//	marketplace_catalog_listings_by_category{category}
//	marketplace_catalog_average_price
//	go_* and process_* system metrics
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	catalogListings    prometheus.Gauge
	catalogRequests    prometheus.Gauge
	listingsByCategory *prometheus.GaugeVec
	averagePrice       prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_http_requests_total",
				Help: "Number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketplace_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		catalogListings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marketplace_catalog_listings",
			Help: "Number of listings in the catalog",
		}),
		catalogRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marketplace_catalog_requests",
			Help: "Number of buyer requests in the catalog",
		}),
		listingsByCategory: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketplace_catalog_listings_by_category",
				Help: "Number of listings per category",
			},
			[]string{"category"},
		),
		averagePrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "marketplace_catalog_average_price",
			Help: "Average listing price",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.catalogListings,
		m.catalogRequests,
		m.listingsByCategory,
		m.averagePrice,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCatalog publishes the catalog summary as gauges.
func (m *Metrics) ObserveCatalog(s *models.CatalogSummary) {
	if s == nil {
		return
	}
	m.catalogListings.Set(float64(s.TotalListings))
	m.catalogRequests.Set(float64(s.TotalRequests))
	m.averagePrice.Set(s.AveragePrice)
	for category, n := range s.ListingsByCategory {
		m.listingsByCategory.WithLabelValues(category).Set(float64(n))
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
