// Package filter narrows a corpus by account, country, theme, keyword and
// date-range criteria without mutating the input.
package filter

import (
	"strings"

	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/match"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

// Criteria describes one query's constraints. Empty or nil fields mean no
// constraint on that dimension.
type Criteria struct {
	Themes    []string
	Keywords  []string
	Accounts  []string
	Countries []string
	DateRange *corpus.DateRange
}

// IsZero reports whether no dimension is constrained.
func (c Criteria) IsZero() bool {
	return len(c.Themes) == 0 &&
		len(c.Keywords) == 0 &&
		len(c.Accounts) == 0 &&
		len(c.Countries) == 0 &&
		c.DateRange == nil
}

// Filter applies criteria to corpora. The theme predicate classifies posts
// through the matcher with multi-theme semantics and a fixed threshold, so
// the same post always lands in the same themes across queries.
type Filter struct {
	matcher   *match.Matcher
	threshold int
}

// New creates a filter using match.DefaultThreshold for theme predicates.
func New(m *match.Matcher) *Filter {
	return &Filter{matcher: m, threshold: match.DefaultThreshold}
}

// Apply returns the subset of data satisfying the criteria. Unconstrained
// criteria return the input unchanged without copying. Accounts failing an
// account-level predicate are dropped whole; surviving accounts keep only
// posts passing every post-level predicate, and accounts left with zero
// posts are dropped from the result.
func (f *Filter) Apply(data corpus.Corpus, c Criteria) corpus.Corpus {
	if c.IsZero() {
		return data
	}

	accountSet := toSet(c.Accounts)
	countrySet := toSet(c.Countries)
	themeSet := toSet(c.Themes)
	keywords := lowerAll(c.Keywords)

	filtered := make(corpus.Corpus, 0, len(data))
	for _, acct := range data {
		if len(accountSet) > 0 {
			if _, ok := accountSet[acct.Username]; !ok {
				continue
			}
		}
		if len(countrySet) > 0 {
			if _, ok := countrySet[acct.Country]; !ok {
				continue
			}
		}

		kept := make([]corpus.Post, 0, len(acct.Posts))
		for _, post := range acct.Posts {
			if !f.postMatches(post, c.DateRange, themeSet, keywords) {
				continue
			}
			kept = append(kept, post)
		}
		if len(kept) == 0 {
			continue
		}
		out := acct
		out.Posts = kept
		filtered = append(filtered, out)
	}
	return filtered
}

func (f *Filter) postMatches(post corpus.Post, dr *corpus.DateRange, themeSet map[string]struct{}, keywords []string) bool {
	if dr != nil {
		d, ok := post.Date()
		if !ok || !dr.Contains(d) {
			return false
		}
	}

	if len(themeSet) == 0 && len(keywords) == 0 {
		return true
	}
	blob := post.TextBlob()

	if len(themeSet) > 0 {
		themes := f.matcher.Classify(blob, true, f.threshold)
		ok := false
		if len(themes) == 0 {
			_, ok = themeSet[taxonomy.Others]
		} else {
			for _, th := range themes {
				if _, hit := themeSet[th]; hit {
					ok = true
					break
				}
			}
		}
		if !ok {
			return false
		}
	}

	if len(keywords) > 0 {
		ok := false
		for _, kw := range keywords {
			if kw != "" && strings.Contains(blob, kw) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func toSet(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func lowerAll(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strings.ToLower(v)
	}
	return out
}
