// Package match classifies post text against a taxonomy.
//
// Classification runs in two phases: a cheap exact-substring scan over
// every keyword, then a fuzzy partial-ratio fallback that only runs when
// the exact phase matched nothing. The fallback is capped to the first
// FuzzyKeywordCap keywords per theme to bound worst-case cost, trading a
// little recall for a hard upper limit on fuzzy comparisons.
package match

import (
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

const (
	// DefaultThreshold is the fuzzy similarity cutoff used when a caller
	// passes a non-positive threshold. Call sites must pin one value per
	// code path so identical posts classify identically.
	DefaultThreshold = 60

	// FuzzyKeywordCap limits how many keywords per theme the fuzzy phase
	// examines.
	FuzzyKeywordCap = 10

	// minFuzzyRunes is the length floor (in runes) below which neither a
	// text blob nor a keyword participates in fuzzy matching.
	minFuzzyRunes = 3
)

// Matcher classifies text blobs against one taxonomy. It is stateless
// beyond the taxonomy reference and safe for concurrent use.
type Matcher struct {
	tax *taxonomy.Taxonomy
}

// New creates a matcher over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Matcher {
	return &Matcher{tax: tax}
}

// Taxonomy returns the taxonomy this matcher classifies against.
func (m *Matcher) Taxonomy() *taxonomy.Taxonomy { return m.tax }

// Classify returns the names of every theme matching the text blob, in
// taxonomy order. When multiple is false the first matching theme wins and
// a single-element result is returned. An empty result means no theme
// matched; the matcher never returns taxonomy.Others itself.
func (m *Matcher) Classify(blob string, multiple bool, threshold int) []string {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	blob = strings.ToLower(blob)

	var matched []string
	for _, th := range m.tax.Lowered() {
		if themeMatchesExact(th.Keywords, blob) {
			matched = append(matched, th.Name)
			if !multiple {
				return matched
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}

	// Fuzzy fallback. Very short blobs (a lone space, a stray emoji) would
	// partial-ratio-match almost anything, so they stay unclassified.
	if utf8.RuneCountInString(blob) <= minFuzzyRunes {
		return nil
	}
	for _, th := range m.tax.Lowered() {
		if themeMatchesFuzzy(th.Keywords, blob, threshold) {
			matched = append(matched, th.Name)
			if !multiple {
				return matched
			}
		}
	}
	return matched
}

// ClassifyExact runs only the exact-substring phase. When multiple is
// false the first matching theme in taxonomy order wins.
func (m *Matcher) ClassifyExact(blob string, multiple bool) []string {
	blob = strings.ToLower(blob)
	var matched []string
	for _, th := range m.tax.Lowered() {
		if themeMatchesExact(th.Keywords, blob) {
			matched = append(matched, th.Name)
			if !multiple {
				return matched
			}
		}
	}
	return matched
}

func themeMatchesExact(keywords []string, blob string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

func themeMatchesFuzzy(keywords []string, blob string, threshold int) bool {
	if len(keywords) > FuzzyKeywordCap {
		keywords = keywords[:FuzzyKeywordCap]
	}
	for _, kw := range keywords {
		if utf8.RuneCountInString(kw) <= minFuzzyRunes {
			continue
		}
		if fuzzy.PartialRatio(kw, blob) >= threshold {
			return true
		}
	}
	return false
}
