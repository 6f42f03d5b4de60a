package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leadqual"

// Metrics exposes counters and histograms for the chat and HTTP flows.
// All methods are safe on a nil receiver.
type Metrics struct {
	gatherer prometheus.Gatherer

	repliesTotal    *prometheus.CounterVec
	replyLatency    *prometheus.HistogramVec
	classifications *prometheus.CounterVec
	historySize     prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "conversation",
			Name:      "replies_total",
			Help:      "Total AI replies by outcome",
		}, []string{"status"}),
		replyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "conversation",
			Name:      "reply_latency_seconds",
			Help:      "Latency of AI reply generation including the artificial delay",
			Buckets:   []float64{0.5, 1, 2, 3, 5, 10, 20, 30, 60},
		}, []string{"status"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "conversation",
			Name:      "classifications_total",
			Help:      "Lead classification results",
		}, []string{"classification"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "entries",
			Help:      "Archived conversations currently held in memory",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"method", "route", "code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.repliesTotal, m.replyLatency, m.classifications, m.historySize, m.httpRequests, m.httpLatency)
	return m
}

func (m *Metrics) ObserveReply(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.repliesTotal.WithLabelValues(status).Inc()
	m.replyLatency.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) ObserveClassification(classification string) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(classification).Inc()
}

func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}

// GinMiddleware records request counts and latency per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
