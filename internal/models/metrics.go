package models

import "time"

// SystemMetrics is a point-in-time snapshot of runtime counters.
type SystemMetrics struct {
	SessionHitRatio          float64   `json:"session_hit_ratio"`
	SessionHits              uint64    `json:"session_hits"`
	SessionMisses            uint64    `json:"session_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
