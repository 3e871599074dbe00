// Package metrics holds the Prometheus collectors shared by the HTTP and
// database layers.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var registerOnce sync.Once

// Metrics объединяет HTTP и DB коллекторы сервиса.
type Metrics struct {
	serviceInfo *prometheus.GaugeVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbConnectionsOpen  *prometheus.GaugeVec
	dbConnectionsIdle  *prometheus.GaugeVec
	dbConnectionsInUse *prometheus.GaugeVec
}

// New builds the collector set and registers it with the default registry.
// Registration happens once per process; repeated calls reuse the registry
// state.
func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "smc",
				Name:      "service_info",
				Help:      "Static marker of the running service.",
			},
			[]string{"service"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smc",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Count of processed HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "smc",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request handling time.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		dbQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smc",
				Subsystem: "db",
				Name:      "queries_total",
				Help:      "Count of executed database queries.",
			},
			[]string{"service", "operation", "status"},
		),
		dbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "smc",
				Subsystem: "db",
				Name:      "query_duration_seconds",
				Help:      "Database query execution time.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		dbConnectionsOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "smc",
				Subsystem: "db",
				Name:      "connections_open",
				Help:      "Open connections in the pool.",
			},
			[]string{"service"},
		),
		dbConnectionsIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "smc",
				Subsystem: "db",
				Name:      "connections_idle",
				Help:      "Idle connections in the pool.",
			},
			[]string{"service"},
		),
		dbConnectionsInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "smc",
				Subsystem: "db",
				Name:      "connections_in_use",
				Help:      "Connections currently in use.",
			},
			[]string{"service"},
		),
	}

	registerOnce.Do(func() {
		prometheus.MustRegister(
			m.serviceInfo,
			m.httpRequestsTotal,
			m.httpRequestDuration,
			m.dbQueriesTotal,
			m.dbQueryDuration,
			m.dbConnectionsOpen,
			m.dbConnectionsIdle,
			m.dbConnectionsInUse,
		)
	})

	m.serviceInfo.WithLabelValues(serviceName).Set(1)

	return m
}

// ObserveHTTPRequest записывает результат обработки HTTP запроса.
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery записывает результат выполнения запроса к базе.
func (m *Metrics) ObserveDBQuery(service, operation, status string, seconds float64) {
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}

// SetDBConnections обновляет gauges состояния connection pool.
func (m *Metrics) SetDBConnections(service string, open, idle, inUse int) {
	m.dbConnectionsOpen.WithLabelValues(service).Set(float64(open))
	m.dbConnectionsIdle.WithLabelValues(service).Set(float64(idle))
	m.dbConnectionsInUse.WithLabelValues(service).Set(float64(inUse))
}
