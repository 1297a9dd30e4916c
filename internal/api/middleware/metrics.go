package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "transcriptor"

// Metrics holds the server's prometheus collectors
type Metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	transcriptions *prometheus.CounterVec
	audioBytes     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"route", "method"}),
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transcriptions_total",
			Help:      "Transcriptions by engine and outcome.",
		}, []string{"engine", "status"}),
		audioBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upload_size_bytes",
			Help:      "Size of uploaded audio files.",
			Buckets:   prometheus.ExponentialBuckets(16<<10, 4, 8),
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.transcriptions, m.audioBytes)
	return m
}

// Handler records request count and latency per matched route
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveTranscription records one transcription outcome
func (m *Metrics) ObserveTranscription(engine string, sizeBytes int64, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.transcriptions.WithLabelValues(engine, status).Inc()
	m.audioBytes.Observe(float64(sizeBytes))
}
