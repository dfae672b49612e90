package analyzer

import (
	"sync"
	"time"

	"github.com/sozercan/feedbacklens/apimodels"
)

// Metrics tracks process-wide orchestrator counters. Reset only at process
// start; written only by the Analyzer.
type Metrics struct {
	mu sync.Mutex

	totalCalls     uint64
	cacheHits      uint64
	cacheMisses    uint64
	fallbacks      uint64
	remoteFailures uint64
	avgLatencyMS   float64
}

// RecordCall records one remote call attempt and folds its latency into the
// running average.
func (m *Metrics) RecordCall(latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalCalls++
	ms := float64(latency.Microseconds()) / 1000.0
	m.avgLatencyMS += (ms - m.avgLatencyMS) / float64(m.totalCalls)
}

func (m *Metrics) RecordCacheHits(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits += uint64(n)
}

func (m *Metrics) RecordCacheMisses(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses += uint64(n)
}

func (m *Metrics) RecordFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks++
}

func (m *Metrics) RecordRemoteFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remoteFailures++
}

func (m *Metrics) Snapshot() apimodels.PerformanceMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return apimodels.PerformanceMetrics{
		TotalCalls:     m.totalCalls,
		CacheHits:      m.cacheHits,
		CacheMisses:    m.cacheMisses,
		AvgLatencyMS:   m.avgLatencyMS,
		FallbackCount:  m.fallbacks,
		RemoteFailures: m.remoteFailures,
	}
}
