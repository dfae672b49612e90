package apimodels

// PartitionStats reports cache accounting for a single partition.
type PartitionStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// CacheStats maps partition name (sentiment/insight/summary) to its stats.
type CacheStats map[string]PartitionStats

// PerformanceMetrics is a read-only snapshot of the orchestrator counters.
type PerformanceMetrics struct {
	TotalCalls     uint64  `json:"totalCalls"`
	CacheHits      uint64  `json:"cacheHits"`
	CacheMisses    uint64  `json:"cacheMisses"`
	AvgLatencyMS   float64 `json:"avgLatencyMs"`
	FallbackCount  uint64  `json:"fallbackCount"`
	RemoteFailures uint64  `json:"remoteFailures"`
}

// StatusResponse is the health/monitoring snapshot for operators.
type StatusResponse struct {
	// Available is true as long as an analysis path exists; the local
	// fallback keeps this true even with the circuit open.
	Available bool `json:"available"`

	CircuitOpen bool `json:"circuitOpen"`

	// RateLimited is true while the throttle interval is backed off above
	// its floor.
	RateLimited bool `json:"rateLimited"`

	CacheStats CacheStats `json:"cacheStats"`

	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
}
