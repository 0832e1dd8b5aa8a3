// Package report assembles one render-ready dashboard payload from a
// filtered corpus. Consumers own all display formatting; a report is plain
// structured data.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/proplens/themescope/pkg/themescope/aggregate"
	"github.com/proplens/themescope/pkg/themescope/cache"
	"github.com/proplens/themescope/pkg/themescope/corpus"
)

// DefaultTopKeywords is how many ranked keywords a report carries when the
// caller does not choose.
const DefaultTopKeywords = 15

// Metrics are the headline corpus numbers.
type Metrics struct {
	TotalAccounts        int   `json:"total_accounts"`
	TotalCountries       int   `json:"total_countries"`
	TotalPosts           int   `json:"total_posts"`
	TotalEngagements     int64 `json:"total_engagements"`
	AvgEngagementPerPost int64 `json:"avg_engagement_per_post"`
	// EstimatedReach is a heuristic (10% of followers per post plus an
	// engagement boost), not a measured metric.
	EstimatedReach int64 `json:"estimated_reach"`
}

// Report is one dashboard render's worth of engine output.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Metrics     Metrics               `json:"metrics"`
	AccountRows []aggregate.AccountRow `json:"account_rows"`

	PostTrend       []aggregate.TrendPoint `json:"post_trend"`
	EngagementTrend []aggregate.TrendPoint `json:"engagement_trend"`

	ThemeDistribution         map[string]int              `json:"theme_distribution"`
	ThemeDistributionOverTime []aggregate.ThemeTrendPoint `json:"theme_distribution_over_time"`
	TopKeywords               []aggregate.KeywordCount    `json:"top_keywords"`
}

// Options tunes report assembly.
type Options struct {
	// AllowMultipleThemes and FuzzyThreshold control the distribution
	// classification; zero threshold uses the aggregate default.
	AllowMultipleThemes bool
	FuzzyThreshold      int
	// TopKeywords limits the keyword ranking; zero means
	// DefaultTopKeywords.
	TopKeywords int
}

// Builder constructs reports. The distributions go through the memo cache
// when one is set; everything else is computed directly.
type Builder struct {
	agg     *aggregate.Aggregator
	memo    *cache.Cache
	entropy *ulid.MonotonicEntropy
}

// New creates a builder over agg. memo may be nil to bypass memoization.
func New(agg *aggregate.Aggregator, memo *cache.Cache) *Builder {
	return &Builder{
		agg:     agg,
		memo:    memo,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build assembles a report over data, which is assumed to be already
// filtered.
func (b *Builder) Build(data corpus.Corpus, opts Options) Report {
	threshold := opts.FuzzyThreshold
	if threshold <= 0 {
		threshold = aggregate.DefaultDistributionThreshold
	}
	topN := opts.TopKeywords
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	var dist map[string]int
	var overTime []aggregate.ThemeTrendPoint
	if b.memo != nil {
		dist = b.memo.ThemeDistribution(data, opts.AllowMultipleThemes, threshold)
		overTime = b.memo.ThemeDistributionOverTime(data)
	} else {
		dist = b.agg.ThemeDistribution(data, opts.AllowMultipleThemes, threshold)
		overTime = b.agg.ThemeDistributionOverTime(data)
	}

	return Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Metrics: Metrics{
			TotalAccounts:        b.agg.TotalAccounts(data),
			TotalCountries:       b.agg.TotalCountries(data),
			TotalPosts:           b.agg.TotalPosts(data),
			TotalEngagements:     b.agg.TotalEngagements(data),
			AvgEngagementPerPost: b.agg.AvgEngagementPerPost(data),
			EstimatedReach:       b.agg.EstimatedReach(data),
		},
		AccountRows:               b.agg.AccountRows(data),
		PostTrend:                 b.agg.PostTrend(data),
		EngagementTrend:           b.agg.EngagementTrend(data),
		ThemeDistribution:         dist,
		ThemeDistributionOverTime: overTime,
		TopKeywords:               b.agg.TopKeywords(data, topN),
	}
}
