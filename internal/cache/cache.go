// Package cache provides the bounded, multi-partition result cache. Each
// analysis kind gets an independent LRU partition so eviction pressure from
// one kind never displaces another's entries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sozercan/feedbacklens/apimodels"
)

// Keys longer than this are replaced by a prefix+hash to bound memory held
// by very large inputs.
const maxLiteralKeyLen = 1000

const hashKeyPrefixLen = 100

type partition struct {
	entries *lru.Cache[string, apimodels.AnalysisResult]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

type Cache struct {
	partitions map[apimodels.Kind]*partition
}

type Capacities struct {
	Sentiment int
	Insight   int
	Summary   int
}

func New(caps Capacities) (*Cache, error) {
	c := &Cache{partitions: make(map[apimodels.Kind]*partition, 3)}
	for kind, capacity := range map[apimodels.Kind]int{
		apimodels.KindSentiment: caps.Sentiment,
		apimodels.KindInsight:   caps.Insight,
		apimodels.KindSummary:   caps.Summary,
	} {
		entries, err := lru.New[string, apimodels.AnalysisResult](capacity)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s cache partition: %w", kind, err)
		}
		c.partitions[kind] = &partition{entries: entries}
	}
	return c, nil
}

// Get looks up the cached result for text in the given kind's partition.
// A hit refreshes the entry's recency.
func (c *Cache) Get(text string, kind apimodels.Kind) (apimodels.AnalysisResult, bool) {
	p, ok := c.partitions[kind]
	if !ok {
		return apimodels.AnalysisResult{}, false
	}
	result, ok := p.entries.Get(Key(text))
	if ok {
		p.hits.Add(1)
	} else {
		p.misses.Add(1)
	}
	return result, ok
}

// Put stores a result, evicting the least-recently-accessed entry if the
// partition is at capacity.
func (c *Cache) Put(text string, result apimodels.AnalysisResult, kind apimodels.Kind) {
	if p, ok := c.partitions[kind]; ok {
		p.entries.Add(Key(text), result)
	}
}

// Stats returns hit/miss/size accounting per partition.
func (c *Cache) Stats() apimodels.CacheStats {
	stats := make(apimodels.CacheStats, len(c.partitions))
	for kind, p := range c.partitions {
		stats[string(kind)] = apimodels.PartitionStats{
			Hits:   p.hits.Load(),
			Misses: p.misses.Load(),
			Size:   p.entries.Len(),
		}
	}
	return stats
}

// Key derives the cache key for an input text. Short texts key on
// themselves; long ones on a 100-byte prefix plus a content hash, which
// bounds key memory without colliding in practice.
func Key(text string) string {
	if len(text) <= maxLiteralKeyLen {
		return text
	}
	sum := sha256.Sum256([]byte(text))
	return text[:hashKeyPrefixLen] + "_" + hex.EncodeToString(sum[:])
}
