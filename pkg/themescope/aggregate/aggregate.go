// Package aggregate computes summary statistics, ranked keyword counts and
// month-bucketed time series over a (typically pre-filtered) corpus.
//
// Every function tolerates missing data: absent numeric fields count as
// zero, absent strings as empty, and posts with unparseable dates are
// silently excluded from date-dependent series. All results are defined on
// an empty corpus.
package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/match"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

// DefaultDistributionThreshold is the fuzzy threshold pinned for
// ThemeDistribution calls that do not choose their own.
const DefaultDistributionThreshold = 80

// Aggregator exposes the corpus summary computations. It is stateless
// beyond its matcher reference and safe for concurrent use.
type Aggregator struct {
	matcher *match.Matcher
}

// New creates an aggregator classifying through the given matcher.
func New(m *match.Matcher) *Aggregator {
	return &Aggregator{matcher: m}
}

// TotalAccounts returns the number of accounts in the corpus.
func (a *Aggregator) TotalAccounts(data corpus.Corpus) int {
	return len(data)
}

// TotalCountries returns the number of distinct non-empty country values.
func (a *Aggregator) TotalCountries(data corpus.Corpus) int {
	countries := make(map[string]struct{})
	for _, acct := range data {
		if acct.Country != "" {
			countries[acct.Country] = struct{}{}
		}
	}
	return len(countries)
}

// TotalPosts returns the number of posts across all accounts.
func (a *Aggregator) TotalPosts(data corpus.Corpus) int {
	return data.TotalPosts()
}

// TotalEngagements sums likes, comments and video views over every post.
func (a *Aggregator) TotalEngagements(data corpus.Corpus) int64 {
	var total int64
	for _, acct := range data {
		for _, post := range acct.Posts {
			total += post.Engagement()
		}
	}
	return total
}

// AvgEngagementPerPost returns total engagements divided by post count,
// rounded to the nearest integer, and 0 for an empty corpus.
func (a *Aggregator) AvgEngagementPerPost(data corpus.Corpus) int64 {
	posts := data.TotalPosts()
	if posts == 0 {
		return 0
	}
	return int64(math.Round(float64(a.TotalEngagements(data)) / float64(posts)))
}

// EstimatedReach estimates how many users saw the corpus's posts, assuming
// roughly 10% of an account's followers see each post plus a boost from
// engagement. This is a heuristic, not a measured metric. The sum is
// truncated to an integer once at the end, not per post.
func (a *Aggregator) EstimatedReach(data corpus.Corpus) int64 {
	var reach float64
	for _, acct := range data {
		for _, post := range acct.Posts {
			reach += 0.1*float64(acct.Followers) + 0.05*float64(post.Engagement())
		}
	}
	return int64(reach)
}

// TrendPoint is one month's value in a time series. Month is always the
// first day of the calendar month.
type TrendPoint struct {
	Month time.Time `json:"month"`
	Value int64     `json:"value"`
}

// PostTrend counts posts per calendar month, ascending by month. Months
// with no posts produce no point, and posts without a parseable upload
// date are excluded.
func (a *Aggregator) PostTrend(data corpus.Corpus) []TrendPoint {
	return a.trend(data, func(corpus.Post) int64 { return 1 })
}

// EngagementTrend sums engagement per calendar month, ascending by month,
// with the same date handling as PostTrend.
func (a *Aggregator) EngagementTrend(data corpus.Corpus) []TrendPoint {
	return a.trend(data, corpus.Post.Engagement)
}

func (a *Aggregator) trend(data corpus.Corpus, value func(corpus.Post) int64) []TrendPoint {
	byMonth := make(map[time.Time]int64)
	for _, acct := range data {
		for _, post := range acct.Posts {
			d, ok := post.Date()
			if !ok {
				continue
			}
			byMonth[corpus.MonthOf(d)] += value(post)
		}
	}
	if len(byMonth) == 0 {
		return nil
	}
	points := make([]TrendPoint, 0, len(byMonth))
	for month, v := range byMonth {
		points = append(points, TrendPoint{Month: month, Value: v})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}

// ThemeDistribution classifies every post and returns post counts per
// theme name. With multiple true a post increments every theme it matches,
// so counts may sum to more than the post count; with multiple false every
// post lands in exactly one bucket. A post matching nothing increments
// taxonomy.Others exactly once either way.
func (a *Aggregator) ThemeDistribution(data corpus.Corpus, multiple bool, threshold int) map[string]int {
	counts := make(map[string]int)
	for _, acct := range data {
		for _, post := range acct.Posts {
			themes := a.matcher.Classify(post.TextBlob(), multiple, threshold)
			if len(themes) == 0 {
				counts[taxonomy.Others]++
				continue
			}
			for _, th := range themes {
				counts[th]++
			}
		}
	}
	return counts
}

// ThemeTrendPoint is one theme's post count within one month.
type ThemeTrendPoint struct {
	Month time.Time `json:"month"`
	Theme string    `json:"theme"`
	Count int       `json:"count"`
}

// ThemeDistributionOverTime buckets posts by calendar month and assigns
// each post a single theme using exact matching only, first matching theme
// in taxonomy order winning. This is intentionally stricter than
// ThemeDistribution (no fuzzy phase, no multi-counting); the two views of
// the same corpus are not expected to agree. Results are sorted by month
// ascending, themes within a month in taxonomy order with Others last.
func (a *Aggregator) ThemeDistributionOverTime(data corpus.Corpus) []ThemeTrendPoint {
	byMonth := make(map[time.Time]map[string]int)
	for _, acct := range data {
		for _, post := range acct.Posts {
			d, ok := post.Date()
			if !ok {
				continue
			}
			month := corpus.MonthOf(d)
			themes := a.matcher.ClassifyExact(post.TextBlob(), false)
			theme := taxonomy.Others
			if len(themes) > 0 {
				theme = themes[0]
			}
			if byMonth[month] == nil {
				byMonth[month] = make(map[string]int)
			}
			byMonth[month][theme]++
		}
	}
	if len(byMonth) == 0 {
		return nil
	}

	months := make([]time.Time, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	ordered := append(a.matcher.Taxonomy().Names(), taxonomy.Others)
	var points []ThemeTrendPoint
	for _, month := range months {
		counts := byMonth[month]
		for _, theme := range ordered {
			if n, ok := counts[theme]; ok {
				points = append(points, ThemeTrendPoint{Month: month, Theme: theme, Count: n})
			}
		}
	}
	return points
}

// KeywordCount is one taxonomy keyword with its occurrence count.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TopKeywords counts substring occurrences of every taxonomy keyword
// across every post's text blob and returns the top n by count. This is an
// occurrence count, not a post count: a keyword appearing twice in one
// caption counts twice, and a keyword listed under two themes accumulates
// its occurrences once per listing. Ties keep taxonomy iteration order.
func (a *Aggregator) TopKeywords(data corpus.Corpus, n int) []KeywordCount {
	tax := a.matcher.Taxonomy()
	counts := make(map[string]int)
	var order []string // lowercased keywords, first appearance first
	display := make(map[string]string)

	for _, th := range tax.Themes() {
		for _, kw := range th.Keywords {
			low := strings.ToLower(kw)
			if _, seen := counts[low]; !seen {
				counts[low] = 0
				order = append(order, low)
				display[low] = kw
			}
		}
	}

	for _, acct := range data {
		for _, post := range acct.Posts {
			blob := post.TextBlob()
			for _, th := range tax.Lowered() {
				for _, kw := range th.Keywords {
					if c := strings.Count(blob, kw); c > 0 {
						counts[kw] += c
					}
				}
			}
		}
	}

	ranked := make([]KeywordCount, 0, len(order))
	for _, low := range order {
		ranked = append(ranked, KeywordCount{Keyword: display[low], Count: counts[low]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AccountRow is one flattened table row per post for tabular consumers.
type AccountRow struct {
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	Country     string `json:"country"`
	PostURL     string `json:"post_url"`
	ProfileURL  string `json:"profile_url"`
	ExternalURL string `json:"external_url"`
}

// AccountRows flattens the corpus into one row per post, carrying the
// owning account's profile fields on every row.
func (a *Aggregator) AccountRows(data corpus.Corpus) []AccountRow {
	var rows []AccountRow
	for _, acct := range data {
		profileURL := "https://www.instagram.com/" + acct.Username
		for _, post := range acct.Posts {
			rows = append(rows, AccountRow{
				Username:    acct.Username,
				FullName:    acct.FullName,
				Followers:   acct.Followers,
				Following:   acct.Following,
				Country:     acct.Country,
				PostURL:     post.URL,
				ProfileURL:  profileURL,
				ExternalURL: acct.ExternalURL,
			})
		}
	}
	return rows
}
