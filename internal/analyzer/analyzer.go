// Package analyzer is the orchestrator mediating every call to the remote
// inference API. It layers a partitioned result cache, a circuit breaker,
// an adaptive throttle, and batch planning in front of the remote model,
// and falls back to the local lexicon analyzer whenever the remote path is
// unavailable or fails. Callers never see a remote error: degraded results
// are returned instead.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sozercan/feedbacklens/apimodels"
	"github.com/sozercan/feedbacklens/internal/batch"
	"github.com/sozercan/feedbacklens/internal/breaker"
	"github.com/sozercan/feedbacklens/internal/cache"
	"github.com/sozercan/feedbacklens/internal/config"
	"github.com/sozercan/feedbacklens/internal/llm"
	"github.com/sozercan/feedbacklens/internal/local"
	"github.com/sozercan/feedbacklens/internal/parse"
	"github.com/sozercan/feedbacklens/internal/throttle"
)

// ProgressFunc receives an event each time a batch completes.
type ProgressFunc func(apimodels.Progress)

type Analyzer struct {
	provider llm.Provider
	cache    *cache.Cache
	breaker  *breaker.Breaker
	throttle *throttle.Throttle
	metrics  *Metrics

	localConcurrency  int
	remoteConcurrency int
}

func New(provider llm.Provider, cfg *config.Config) (*Analyzer, error) {
	resultCache, err := cache.New(cache.Capacities{
		Sentiment: cfg.Cache.SentimentCapacity,
		Insight:   cfg.Cache.InsightCapacity,
		Summary:   cfg.Cache.SummaryCapacity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	localConcurrency := cfg.Analyzer.LocalConcurrency
	if localConcurrency <= 0 {
		localConcurrency = runtime.NumCPU()
	}

	return &Analyzer{
		provider:          provider,
		cache:             resultCache,
		breaker:           breaker.New(cfg.Breaker.FailureThreshold, cfg.Breaker.ResetTimeout),
		throttle:          throttle.New(cfg.Throttle.Floor, cfg.Throttle.Ceiling),
		metrics:           &Metrics{},
		localConcurrency:  localConcurrency,
		remoteConcurrency: cfg.Analyzer.RemoteConcurrency,
	}, nil
}

// progressState fans batch-completion events into the caller's sink.
type progressState struct {
	mu           sync.Mutex
	sink         ProgressFunc
	batchesDone  int
	batchesTotal int
	itemsDone    int
	itemsTotal   int
}

func (p *progressState) batchDone(items int) {
	if p.sink == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batchesDone++
	p.itemsDone += items
	// The sink is invoked under the lock so events arrive in counter order.
	p.sink(apimodels.Progress{
		BatchesDone:    p.batchesDone,
		BatchesTotal:   p.batchesTotal,
		ItemsProcessed: p.itemsDone,
		ItemsTotal:     p.itemsTotal,
	})
}

// Analyze serves one analysis request. The returned slice always has the
// same length and index alignment as req.Inputs, whatever mix of cache,
// remote batches, and local fallback produced it.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest, progress ProgressFunc) (*apimodels.AnalysisResponse, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("unknown analysis kind %q", req.Kind)
	}

	requestID := uuid.New().String()
	start := time.Now()
	slog.Info("starting analysis", "requestID", requestID, "kind", req.Kind, "inputs", len(req.Inputs))

	results := make([]apimodels.AnalysisResult, len(req.Inputs))

	// Step 1: cache lookup per input.
	var missTexts []string
	var missIndices []int
	for i, text := range req.Inputs {
		if cached, ok := a.cache.Get(text, req.Kind); ok {
			results[i] = cached
		} else {
			missTexts = append(missTexts, text)
			missIndices = append(missIndices, i)
		}
	}
	hits := len(req.Inputs) - len(missTexts)
	a.metrics.RecordCacheHits(hits)
	a.metrics.RecordCacheMisses(len(missTexts))

	degraded := false
	if len(missTexts) > 0 {
		// Step 2: route. Sentiment always runs locally to conserve remote
		// quota for insight/summary calls; an open circuit forces everything
		// local.
		circuitOpen := a.breaker.IsOpen()
		if req.Kind == apimodels.KindSentiment || circuitOpen {
			if circuitOpen && req.Kind != apimodels.KindSentiment {
				degraded = true
			}
			a.runLocal(req.Kind, missTexts, missIndices, results, newProgress(progress, missTexts, batch.Local))
		} else {
			degraded = a.runRemote(ctx, req.Kind, missTexts, missIndices, results, newProgress(progress, missTexts, batch.Remote))
		}
	}

	slog.Info("analysis complete",
		"requestID", requestID,
		"duration", time.Since(start),
		"cacheHits", hits,
		"cacheMisses", len(missTexts),
		"degraded", degraded,
	)

	return &apimodels.AnalysisResponse{
		Results: results,
		Metadata: apimodels.AnalysisMetadata{
			Duration:    time.Since(start).String(),
			CacheHits:   hits,
			CacheMisses: len(missTexts),
			Degraded:    degraded,
		},
	}, nil
}

func newProgress(sink ProgressFunc, missTexts []string, mode batch.Mode) *progressState {
	batches := 0
	if len(missTexts) > 0 {
		batches = len(batch.Plan(missTexts, make([]int, len(missTexts)), mode))
	}
	return &progressState{
		sink:         sink,
		batchesTotal: batches,
		itemsTotal:   len(missTexts),
	}
}

// runLocal analyzes the given misses with the local analyzer. Sentiment
// results are real and get cached; insight/summary have no local equivalent
// and produce uncached degraded reports.
func (a *Analyzer) runLocal(kind apimodels.Kind, texts []string, indices []int, results []apimodels.AnalysisResult, progress *progressState) {
	var g errgroup.Group
	g.SetLimit(a.localConcurrency)

	for _, b := range batch.Plan(texts, indices, batch.Local) {
		b := b
		g.Go(func() error {
			a.analyzeBatchLocally(kind, b, results)
			progress.batchDone(len(b.Texts))
			return nil
		})
	}
	_ = g.Wait()
}

func (a *Analyzer) analyzeBatchLocally(kind apimodels.Kind, b batch.Batch, results []apimodels.AnalysisResult) {
	for i, text := range b.Texts {
		var result apimodels.AnalysisResult
		if kind == apimodels.KindSentiment {
			result = local.Analyze(text)
			a.cache.Put(text, result, kind)
		} else {
			result = local.Degraded(kind)
		}
		results[b.OriginalIndices[i]] = result
	}
}

// runRemote dispatches remote batches with bounded concurrency. Any batch
// that fails (throttle interrupted, call error, parse error, caller
// deadline) falls back to the local analyzer; the error never propagates.
// Returns true when any batch was served degraded.
func (a *Analyzer) runRemote(ctx context.Context, kind apimodels.Kind, texts []string, indices []int, results []apimodels.AnalysisResult, progress *progressState) bool {
	var degradedMu sync.Mutex
	degraded := false

	var g errgroup.Group
	g.SetLimit(a.remoteConcurrency)

	for _, b := range batch.Plan(texts, indices, batch.Remote) {
		b := b
		g.Go(func() error {
			if !a.processRemoteBatch(ctx, kind, b, results) {
				a.analyzeBatchLocally(kind, b, results)
				a.metrics.RecordFallback()
				degradedMu.Lock()
				degraded = true
				degradedMu.Unlock()
			}
			progress.batchDone(len(b.Texts))
			return nil
		})
	}
	_ = g.Wait()

	return degraded
}

// processRemoteBatch attempts one remote call for a batch, scattering
// results on success. A false return means the caller must fall back.
func (a *Analyzer) processRemoteBatch(ctx context.Context, kind apimodels.Kind, b batch.Batch, results []apimodels.AnalysisResult) bool {
	// Re-check the circuit: another batch may have opened it since this
	// request was routed.
	if a.breaker.IsOpen() {
		return false
	}
	if err := a.throttle.Wait(ctx); err != nil {
		slog.Warn("throttle wait interrupted, falling back to local", "error", err)
		return false
	}

	prompt, err := userPrompt(b.Texts)
	if err != nil {
		return false
	}

	callStart := time.Now()
	resp, err := a.provider.Analyze(ctx, systemPrompt(kind), prompt)
	a.metrics.RecordCall(time.Since(callStart))

	if err != nil {
		a.recordRemoteFailure(err)
		return false
	}

	records, err := parse.Parse(resp.Content, kind)
	if err == nil && len(records) != len(b.Texts) {
		err = fmt.Errorf("expected %d records, model returned %d", len(b.Texts), len(records))
	}
	if err != nil {
		slog.Warn("failed to parse model response, falling back to local", "error", err)
		a.recordRemoteFailure(err)
		return false
	}

	a.breaker.RecordSuccess()
	a.throttle.AdjustSuccess()

	for i, record := range records {
		a.cache.Put(b.Texts[i], record, kind)
		results[b.OriginalIndices[i]] = record
	}
	return true
}

func (a *Analyzer) recordRemoteFailure(err error) {
	a.breaker.RecordFailure()
	if llm.IsQuotaError(err) {
		slog.Warn("remote quota exceeded, backing off", "error", err)
		a.throttle.AdjustQuota()
	} else {
		slog.Warn("remote call failed", "error", err)
		a.throttle.AdjustFailure()
	}
	a.metrics.RecordRemoteFailure()
}

// Status returns the read-only monitoring snapshot. Available stays true
// because the local fallback always provides an analysis path.
func (a *Analyzer) Status() apimodels.StatusResponse {
	return apimodels.StatusResponse{
		Available:          true,
		CircuitOpen:        a.breaker.IsOpen(),
		RateLimited:        a.throttle.Backpressured(),
		CacheStats:         a.cache.Stats(),
		PerformanceMetrics: a.metrics.Snapshot(),
	}
}
