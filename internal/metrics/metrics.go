// Package metrics exposes Prometheus collectors for the HTTP bridge and the
// feed service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/koji-m/Bluedog/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bluedog"

// Metrics owns a private registry so independent instances (one per bridge,
// one per test) never collide.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	FeedItems       *prometheus.CounterVec
	FeedDuplicates  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridge_requests_total",
			Help:      "Total bridge requests by route and status code",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bridge_request_duration_seconds",
			Help:      "Bridge request duration seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		FeedItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_items_total",
			Help:      "Total feed items returned by feed kind",
		}, []string{"kind"}),
		FeedDuplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_duplicates_total",
			Help:      "Total feed items suppressed as already seen by feed kind",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.FeedItems,
		m.FeedDuplicates,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished bridge request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveFetch implements service.FeedObserver.
func (m *Metrics) ObserveFetch(kind models.FeedKind, emitted, suppressed int) {
	m.FeedItems.WithLabelValues(string(kind)).Add(float64(emitted))
	m.FeedDuplicates.WithLabelValues(string(kind)).Add(float64(suppressed))
}
