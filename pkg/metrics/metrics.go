package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UpstreamRequests    *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	QuoteCacheHits      *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to upstream APIs",
			ConstLabels: constLabels,
		}, []string{"upstream", "operation", "outcome"}),

		UpstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Upstream API request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"upstream", "operation"}),

		QuoteCacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "quote_cache_requests_total",
			Help:        "Quote cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// RecordUpstream записывает результат запроса к внешнему API
func (m *Metrics) RecordUpstream(upstream, operation, outcome string, seconds float64) {
	m.UpstreamRequests.WithLabelValues(upstream, operation, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(upstream, operation).Observe(seconds)
}

// RecordQuoteCache записывает результат обращения к кешу расчетов ("hit"/"miss")
func (m *Metrics) RecordQuoteCache(result string) {
	m.QuoteCacheHits.WithLabelValues(result).Inc()
}
