package config

import (
	"fmt"
	"log"

	"github.com/proplens/themescope/pkg/themescope/aggregate"
	"github.com/proplens/themescope/pkg/themescope/cache"
	"github.com/proplens/themescope/pkg/themescope/filter"
	"github.com/proplens/themescope/pkg/themescope/match"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

// Loader loads configuration files and constructs components. Empty paths
// fall back to the built-in taxonomy and default tuning.
type Loader struct {
	TaxonomyPath string
	EnginePath   string

	// Logger receives cache diagnostics; nil means log.Default().
	Logger *log.Logger
}

// Components holds the assembled engine pieces.
type Components struct {
	Taxonomy   *taxonomy.Taxonomy
	Matcher    *match.Matcher
	Filter     *filter.Filter
	Aggregator *aggregate.Aggregator
	Cache      *cache.Cache

	// CacheConfig is the resolved cache tuning used to build Cache, kept for
	// callers assembling their own engine.
	CacheConfig cache.Config

	// FuzzyThreshold and DistributionThreshold are the pinned thresholds
	// for filter-side and distribution-side classification.
	FuzzyThreshold        int
	DistributionThreshold int
	// AllowMultipleThemes controls distribution classification.
	AllowMultipleThemes bool
}

// Load reads the configured files and returns initialized components.
func (l Loader) Load() (*Components, error) {
	comp := &Components{
		FuzzyThreshold:        match.DefaultThreshold,
		DistributionThreshold: aggregate.DefaultDistributionThreshold,
		AllowMultipleThemes:   true,
	}

	if l.TaxonomyPath != "" {
		taxCfg, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Taxonomy = taxonomy.New(taxCfg.Themes)
	} else {
		comp.Taxonomy = taxonomy.Default()
	}

	cacheCfg := cache.DefaultConfig()
	if l.EnginePath != "" {
		eng, err := LoadEngine(l.EnginePath)
		if err != nil {
			return nil, fmt.Errorf("load engine config: %w", err)
		}
		if eng.Matcher.FuzzyThreshold > 0 {
			comp.FuzzyThreshold = eng.Matcher.FuzzyThreshold
		}
		if eng.Matcher.DistributionThreshold > 0 {
			comp.DistributionThreshold = eng.Matcher.DistributionThreshold
		}
		if eng.Matcher.AllowMultipleThemes != nil {
			comp.AllowMultipleThemes = *eng.Matcher.AllowMultipleThemes
		}
		ttl, err := eng.CacheTTL()
		if err != nil {
			return nil, fmt.Errorf("load engine config: %w", err)
		}
		if ttl > 0 {
			cacheCfg.TTL = ttl
		}
		if eng.Cache.MaxEntries > 0 {
			cacheCfg.MaxEntries = eng.Cache.MaxEntries
		}
		if eng.Cache.SamplePosts > 0 {
			cacheCfg.SamplePosts = eng.Cache.SamplePosts
		}
		if eng.Cache.CaptionChars > 0 {
			cacheCfg.CaptionChars = eng.Cache.CaptionChars
		}
	}

	comp.CacheConfig = cacheCfg
	comp.Matcher = match.New(comp.Taxonomy)
	comp.Filter = filter.New(comp.Matcher)
	comp.Aggregator = aggregate.New(comp.Matcher)
	comp.Cache = cache.New(comp.Aggregator, cacheCfg, l.Logger)
	return comp, nil
}
