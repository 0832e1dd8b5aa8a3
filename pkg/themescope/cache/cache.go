// Package cache memoizes the expensive theme-distribution computations,
// keyed by a content-derived fingerprint of the corpus.
package cache

import (
	"log"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/proplens/themescope/pkg/themescope/aggregate"
	"github.com/proplens/themescope/pkg/themescope/corpus"
)

// Config controls fingerprint sampling and entry lifetime.
type Config struct {
	// TTL is how long an entry stays valid. Expired entries are
	// recomputed unconditionally even when the fingerprint still matches.
	TTL time.Duration
	// MaxEntries bounds each memo table.
	MaxEntries int
	// SamplePosts and CaptionChars configure the fingerprint window; see
	// Fingerprinter.
	SamplePosts  int
	CaptionChars int
}

// DefaultConfig returns the standard cache tuning: one-hour TTL, 32
// entries, and a fingerprint sample of 5 posts x 50 caption runes.
func DefaultConfig() Config {
	return Config{
		TTL:          time.Hour,
		MaxEntries:   32,
		SamplePosts:  5,
		CaptionChars: 50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TTL <= 0 {
		c.TTL = d.TTL
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = d.MaxEntries
	}
	if c.SamplePosts <= 0 {
		c.SamplePosts = d.SamplePosts
	}
	if c.CaptionChars <= 0 {
		c.CaptionChars = d.CaptionChars
	}
	return c
}

// Cache wraps an aggregator's ThemeDistribution and
// ThemeDistributionOverTime with TTL-expiring memoization.
//
// Entries are keyed by corpus fingerprint alone. For ThemeDistribution
// that key ignores the multiple/threshold parameters, so callers varying
// those per fingerprint will read whichever variant computed first within
// the TTL. Call sites are expected to pin one parameter set per view.
//
// A mutex per fingerprint keeps at most one computation in flight for the
// same corpus; a recompute racing a just-released slot may run redundantly,
// which is harmless. Failures inside a computation are logged and degrade
// to an empty result so a classification bug can never take down the
// consuming view.
type Cache struct {
	agg    *aggregate.Aggregator
	fp     Fingerprinter
	logger *log.Logger

	dist     *expirable.LRU[string, map[string]int]
	overTime *expirable.LRU[string, []aggregate.ThemeTrendPoint]

	mu       sync.Mutex
	inflight map[string]*sync.Mutex
}

// New creates a cache around agg. A nil logger falls back to log.Default().
func New(agg *aggregate.Aggregator, cfg Config, logger *log.Logger) *Cache {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		agg:      agg,
		fp:       Fingerprinter{SamplePosts: cfg.SamplePosts, CaptionChars: cfg.CaptionChars},
		logger:   logger,
		dist:     expirable.NewLRU[string, map[string]int](cfg.MaxEntries, nil, cfg.TTL),
		overTime: expirable.NewLRU[string, []aggregate.ThemeTrendPoint](cfg.MaxEntries, nil, cfg.TTL),
		inflight: make(map[string]*sync.Mutex),
	}
}

// Fingerprint exposes the cache's corpus fingerprint, mainly for tests and
// diagnostics.
func (c *Cache) Fingerprint(data corpus.Corpus) string {
	return c.fp.Fingerprint(data)
}

// ThemeDistribution returns the memoized multi-bucket distribution for the
// corpus, computing and storing it on miss or expiry.
func (c *Cache) ThemeDistribution(data corpus.Corpus, multiple bool, threshold int) map[string]int {
	key := c.fp.Fingerprint(data)
	unlock := c.lock(key)
	defer unlock()

	if v, ok := c.dist.Get(key); ok {
		return v
	}
	v := compute(c.logger, key, func() map[string]int {
		return c.agg.ThemeDistribution(data, multiple, threshold)
	}, map[string]int{})
	c.dist.Add(key, v)
	return v
}

// ThemeDistributionOverTime returns the memoized per-month single-theme
// series for the corpus, computing and storing it on miss or expiry.
func (c *Cache) ThemeDistributionOverTime(data corpus.Corpus) []aggregate.ThemeTrendPoint {
	key := c.fp.Fingerprint(data)
	unlock := c.lock(key)
	defer unlock()

	if v, ok := c.overTime.Get(key); ok {
		return v
	}
	v := compute[[]aggregate.ThemeTrendPoint](c.logger, key, func() []aggregate.ThemeTrendPoint {
		return c.agg.ThemeDistributionOverTime(data)
	}, nil)
	c.overTime.Add(key, v)
	return v
}

// compute runs fn, converting a panic into the empty fallback plus a log
// line. The fallback is returned to the caller but still enters the memo
// table via the call site, which keeps a broken recompute from being
// retried on every render within the TTL.
func compute[T any](logger *log.Logger, key string, fn func() T, empty T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("cache: recompute failed for %s: %v", key, r)
			out = empty
		}
	}()
	return fn()
}

func (c *Cache) lock(key string) func() {
	c.mu.Lock()
	m, ok := c.inflight[key]
	if !ok {
		m = &sync.Mutex{}
		c.inflight[key] = m
	}
	c.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		c.mu.Lock()
		delete(c.inflight, key)
		c.mu.Unlock()
	}
}
