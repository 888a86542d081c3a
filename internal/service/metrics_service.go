package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	sessionLatency   prometheus.Observer
	sessionHitRatio  prometheus.Gauge
	sessionHits      prometheus.Counter
	sessionMisses    prometheus.Counter
	loginTotal       *prometheus.CounterVec
	enrollmentsTotal *prometheus.CounterVec

	sessionHitCount      uint64
	sessionMissCount     uint64
	requestCount         uint64
	requestDurationTotal uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	sessionLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "session_lookup_seconds",
		Help:    "Latency for session store lookups",
		Buckets: prometheus.DefBuckets,
	})

	sessionHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "session_hit_ratio",
		Help: "Ratio of session lookups resolving to a live record",
	})

	sessionHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_hits_total",
		Help: "Total session lookups that found a usable record",
	})

	sessionMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "session_misses_total",
		Help: "Total session lookups that resolved to logged out",
	})

	loginTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total login attempts by outcome",
	}, []string{"role", "outcome"})

	enrollmentsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "enrollment_decisions_total",
		Help: "Total enrollment attempts by decision",
	}, []string{"decision"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, sessionLatency, sessionHitRatio, sessionHits, sessionMisses, loginTotal, enrollmentsTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:         registry,
		handler:          handler,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		sessionLatency:   sessionLatency,
		sessionHitRatio:  sessionHitRatio,
		sessionHits:      sessionHits,
		sessionMisses:    sessionMisses,
		loginTotal:       loginTotal,
		enrollmentsTotal: enrollmentsTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordSessionLookup records a session store lookup and updates the hit ratio.
func (m *MetricsService) RecordSessionLookup(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.sessionLatency != nil {
		m.sessionLatency.Observe(duration.Seconds())
	}
	if hit {
		m.sessionHits.Inc()
		atomic.AddUint64(&m.sessionHitCount, 1)
	} else {
		m.sessionMisses.Inc()
		atomic.AddUint64(&m.sessionMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.sessionHitCount)
	misses := atomic.LoadUint64(&m.sessionMissCount)
	total := hits + misses
	if total > 0 {
		m.sessionHitRatio.Set(float64(hits) / float64(total))
	}
}

// RecordLogin counts a login attempt outcome per role.
func (m *MetricsService) RecordLogin(role string, success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.loginTotal.WithLabelValues(role, outcome).Inc()
}

// RecordEnrollmentDecision counts an enrollment attempt decision.
func (m *MetricsService) RecordEnrollmentDecision(decision string) {
	if m == nil {
		return
	}
	m.enrollmentsTotal.WithLabelValues(decision).Inc()
}

// Snapshot returns aggregated metrics suitable for the admin dashboard.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.sessionHitCount)
	misses := atomic.LoadUint64(&m.sessionMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var sessionRatio float64
	totalLookups := hits + misses
	if totalLookups > 0 {
		sessionRatio = float64(hits) / float64(totalLookups)
	}

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		SessionHitRatio:          sessionRatio,
		SessionHits:              hits,
		SessionMisses:            misses,
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
