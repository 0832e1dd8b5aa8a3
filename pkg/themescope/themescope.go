// Package themescope classifies social-media posts into real-estate
// marketing themes and aggregates classifications and engagement metrics
// across filter dimensions.
package themescope

import (
	"context"
	"log"

	"github.com/proplens/themescope/pkg/themescope/aggregate"
	"github.com/proplens/themescope/pkg/themescope/cache"
	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/filter"
	"github.com/proplens/themescope/pkg/themescope/match"
	"github.com/proplens/themescope/pkg/themescope/report"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

// Engine is the main classification-and-aggregation facade.
type Engine struct {
	source   corpus.Source
	tax      *taxonomy.Taxonomy
	matcher  *match.Matcher
	filter   *filter.Filter
	agg      *aggregate.Aggregator
	memo     *cache.Cache
	builder  *report.Builder
	reportOp report.Options
}

// Options configures an Engine. Zero values select the built-in taxonomy,
// default thresholds, multi-theme distribution classification and default
// cache tuning.
type Options struct {
	// Source provides the corpus. A nil source yields empty corpora; the
	// engine never propagates a fetch failure.
	Source corpus.Source
	// Taxonomy overrides the built-in theme set.
	Taxonomy *taxonomy.Taxonomy
	// SingleTheme switches distribution classification to one theme per
	// post.
	SingleTheme bool
	// DistributionThreshold is the fuzzy cutoff for distribution
	// classification; zero means aggregate.DefaultDistributionThreshold.
	DistributionThreshold int
	// TopKeywords limits report keyword rankings; zero means
	// report.DefaultTopKeywords.
	TopKeywords int
	// Cache tunes memoization; zero fields use cache.DefaultConfig.
	Cache cache.Config
	// Logger receives cache diagnostics; nil means log.Default().
	Logger *log.Logger
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}
	matcher := match.New(tax)
	agg := aggregate.New(matcher)
	memo := cache.New(agg, opts.Cache, opts.Logger)

	return &Engine{
		source:  opts.Source,
		tax:     tax,
		matcher: matcher,
		filter:  filter.New(matcher),
		agg:     agg,
		memo:    memo,
		builder: report.New(agg, memo),
		reportOp: report.Options{
			AllowMultipleThemes: !opts.SingleTheme,
			FuzzyThreshold:      opts.DistributionThreshold,
			TopKeywords:         opts.TopKeywords,
		},
	}
}

// Taxonomy returns the engine's theme set.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// Matcher returns the engine's classifier.
func (e *Engine) Matcher() *match.Matcher { return e.matcher }

// Aggregator returns the engine's aggregation functions for callers that
// need individual statistics rather than a full report.
func (e *Engine) Aggregator() *aggregate.Aggregator { return e.agg }

// Corpus fetches the full corpus, degrading to an empty one when the
// source is missing or failing.
func (e *Engine) Corpus(ctx context.Context) corpus.Corpus {
	return corpus.FetchOrEmpty(ctx, e.source)
}

// Filter narrows data by criteria.
func (e *Engine) Filter(data corpus.Corpus, c filter.Criteria) corpus.Corpus {
	return e.filter.Apply(data, c)
}

// Dashboard fetches the corpus, applies criteria and assembles a report
// over the filtered result.
func (e *Engine) Dashboard(ctx context.Context, c filter.Criteria) report.Report {
	data := e.Filter(e.Corpus(ctx), c)
	return e.builder.Build(data, e.reportOp)
}

// Report assembles a report over an already-filtered corpus.
func (e *Engine) Report(data corpus.Corpus) report.Report {
	return e.builder.Build(data, e.reportOp)
}
