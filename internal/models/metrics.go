package models

import "time"

// SystemMetrics is a lightweight snapshot of instrumentation counters.
type SystemMetrics struct {
	CacheHitRatio                float64   `json:"cache_hit_ratio"`
	CacheHits                    uint64    `json:"cache_hits"`
	CacheMisses                  uint64    `json:"cache_misses"`
	RequestsTotal                uint64    `json:"requests_total"`
	AverageRequestDurationMs     float64   `json:"average_request_duration_ms"`
	SourceLoadCount              uint64    `json:"source_load_count"`
	AverageSourceLoadDurationMs  float64   `json:"average_source_load_duration_ms"`
	PipelineRuns                 uint64    `json:"pipeline_runs"`
	AveragePipelineDurationMicro float64   `json:"average_pipeline_duration_us"`
	ActiveViews                  int64     `json:"active_views"`
	Goroutines                   int       `json:"goroutines"`
	GeneratedAt                  time.Time `json:"generated_at"`
}
