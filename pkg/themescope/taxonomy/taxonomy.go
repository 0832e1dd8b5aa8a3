// Package taxonomy holds the fixed theme-to-keywords mapping driving all
// classification. A taxonomy is built once at startup and never mutated;
// declaration order doubles as the tie-break order for single-theme
// classification.
package taxonomy

import (
	"sort"
	"strings"
)

// Others is the synthetic bucket for posts matching no theme. It is not
// part of any taxonomy; aggregation layers assign it when classification
// returns nothing.
const Others = "Others"

// Theme is one named theme with its keyword list.
type Theme struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is an ordered, immutable theme collection. Keywords are stored
// in original case; Lowered exposes the precomputed lowercase form every
// matcher compares against.
type Taxonomy struct {
	themes  []Theme
	lowered []Theme
	index   map[string]int
}

// New builds a taxonomy from themes in the given order. Themes with empty
// names and duplicate names after the first are skipped.
func New(themes []Theme) *Taxonomy {
	t := &Taxonomy{index: make(map[string]int, len(themes))}
	for _, th := range themes {
		if th.Name == "" {
			continue
		}
		if _, dup := t.index[th.Name]; dup {
			continue
		}
		kws := make([]string, len(th.Keywords))
		copy(kws, th.Keywords)
		low := make([]string, len(kws))
		for i, kw := range kws {
			low[i] = strings.ToLower(kw)
		}
		t.index[th.Name] = len(t.themes)
		t.themes = append(t.themes, Theme{Name: th.Name, Keywords: kws})
		t.lowered = append(t.lowered, Theme{Name: th.Name, Keywords: low})
	}
	return t
}

// Len returns the number of themes.
func (t *Taxonomy) Len() int { return len(t.themes) }

// Themes returns the themes in taxonomy order with original-case keywords.
// The returned slice is shared; callers must not modify it.
func (t *Taxonomy) Themes() []Theme { return t.themes }

// Lowered returns the themes in taxonomy order with lowercased keywords.
// The returned slice is shared; callers must not modify it.
func (t *Taxonomy) Lowered() []Theme { return t.lowered }

// Names returns the theme names in taxonomy order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.themes))
	for i, th := range t.themes {
		names[i] = th.Name
	}
	return names
}

// Keywords returns the original-case keywords for a theme.
func (t *Taxonomy) Keywords(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.themes[i].Keywords, true
}

// Has reports whether the taxonomy contains a theme with the given name.
func (t *Taxonomy) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AllKeywords returns the deduplicated, sorted union of all keywords
// across every theme, in original case.
func (t *Taxonomy) AllKeywords() []string {
	seen := make(map[string]struct{})
	var all []string
	for _, th := range t.themes {
		for _, kw := range th.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			all = append(all, kw)
		}
	}
	sort.Strings(all)
	return all
}
