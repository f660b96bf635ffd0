package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/sma-schedule-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	cacheLatency       prometheus.Observer
	cacheWrite         prometheus.Observer
	cacheHitRatio      prometheus.Gauge
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	sourceLoadDuration *prometheus.HistogramVec
	pipelineDuration   *prometheus.HistogramVec
	pipelineResultSize *prometheus.HistogramVec
	activeViews        prometheus.Gauge

	cacheHitCount           uint64
	cacheMissCount          uint64
	requestCount            uint64
	requestDurationTotal    uint64
	sourceLoadCount         uint64
	sourceLoadDurationTotal uint64
	pipelineCount           uint64
	pipelineDurationTotal   uint64
	activeViewCount         int64
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

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	sourceLoadDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_source_load_seconds",
		Help:    "Duration of schedule record loads from the configured source",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	pipelineDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "query_pipeline_duration_seconds",
		Help:    "Duration of filter/sort/paginate pipeline runs",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"kind"})

	pipelineResultSize := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "query_pipeline_matched_records",
		Help:    "Number of records matched by the pipeline filters",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"kind"})

	activeViews := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "query_views_active",
		Help: "Interactive query views currently held in memory",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheHits, cacheMisses,
		sourceLoadDuration, pipelineDuration, pipelineResultSize, activeViews, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:           registry,
		handler:            handler,
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		cacheLatency:       cacheLatency,
		cacheWrite:         cacheWrite,
		cacheHitRatio:      cacheHitRatio,
		cacheHits:          cacheHits,
		cacheMisses:        cacheMisses,
		sourceLoadDuration: sourceLoadDuration,
		pipelineDuration:   pipelineDuration,
		pipelineResultSize: pipelineResultSize,
		activeViews:        activeViews,
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

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveSourceLoad records how long a record source took to load one listing.
func (m *MetricsService) ObserveSourceLoad(kind models.ScheduleKind, duration time.Duration) {
	if m == nil {
		return
	}
	m.sourceLoadDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	atomic.AddUint64(&m.sourceLoadCount, 1)
	atomic.AddUint64(&m.sourceLoadDurationTotal, uint64(duration.Nanoseconds()))
}

// ObservePipeline records one pipeline run and how many records it matched.
func (m *MetricsService) ObservePipeline(kind models.ScheduleKind, matched int, duration time.Duration) {
	if m == nil {
		return
	}
	m.pipelineDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	m.pipelineResultSize.WithLabelValues(string(kind)).Observe(float64(matched))
	atomic.AddUint64(&m.pipelineCount, 1)
	atomic.AddUint64(&m.pipelineDurationTotal, uint64(duration.Nanoseconds()))
}

// SetActiveViews publishes the number of live query views.
func (m *MetricsService) SetActiveViews(n int) {
	if m == nil {
		return
	}
	m.activeViews.Set(float64(n))
	atomic.StoreInt64(&m.activeViewCount, int64(n))
}

// Snapshot returns aggregated metrics for the summary endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	loads := atomic.LoadUint64(&m.sourceLoadCount)
	loadDuration := atomic.LoadUint64(&m.sourceLoadDurationTotal)
	runs := atomic.LoadUint64(&m.pipelineCount)
	runDuration := atomic.LoadUint64(&m.pipelineDurationTotal)

	var cacheRatio float64
	if totalLookups := hits + misses; totalLookups > 0 {
		cacheRatio = float64(hits) / float64(totalLookups)
	}

	return models.SystemMetrics{
		CacheHitRatio:                cacheRatio,
		CacheHits:                    hits,
		CacheMisses:                  misses,
		RequestsTotal:                requests,
		AverageRequestDurationMs:     average(reqDuration, requests, time.Millisecond),
		SourceLoadCount:              loads,
		AverageSourceLoadDurationMs:  average(loadDuration, loads, time.Millisecond),
		PipelineRuns:                 runs,
		AveragePipelineDurationMicro: average(runDuration, runs, time.Microsecond),
		ActiveViews:                  atomic.LoadInt64(&m.activeViewCount),
		Goroutines:                   runtime.NumGoroutine(),
		GeneratedAt:                  time.Now().UTC(),
	}
}

func average(totalNanos, count uint64, unit time.Duration) float64 {
	if count == 0 {
		return 0
	}
	return float64(totalNanos) / float64(count) / float64(unit)
}
