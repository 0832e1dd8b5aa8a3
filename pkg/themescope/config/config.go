// Package config loads engine configuration from YAML files and assembles
// ready-to-use components from it.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/proplens/themescope/pkg/themescope/internalerr"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

// Taxonomy represents a taxonomy configuration file.
type Taxonomy struct {
	Themes []taxonomy.Theme `yaml:"themes"`
}

// LoadTaxonomy loads a taxonomy from a YAML file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, err
	}
	if len(tax.Themes) == 0 {
		return nil, fmt.Errorf("%w: taxonomy file %s defines no themes", internalerr.ErrInvalidConfig, path)
	}
	for _, th := range tax.Themes {
		if th.Name == taxonomy.Others {
			return nil, fmt.Errorf("%w: %q is reserved for unmatched posts", internalerr.ErrInvalidConfig, taxonomy.Others)
		}
	}
	return &tax, nil
}

// Engine represents the engine tuning file.
type Engine struct {
	Matcher Matcher `yaml:"matcher"`
	Cache   Cache   `yaml:"cache"`
}

// Matcher holds classification tuning.
type Matcher struct {
	// FuzzyThreshold is the similarity cutoff used by filter-side
	// classification.
	FuzzyThreshold int `yaml:"fuzzy_threshold"`
	// DistributionThreshold is the cutoff pinned for theme-distribution
	// classification. It deliberately may differ from FuzzyThreshold; each
	// code path keeps one fixed value.
	DistributionThreshold int `yaml:"distribution_threshold"`
	// AllowMultipleThemes controls distribution classification; nil means
	// true.
	AllowMultipleThemes *bool `yaml:"allow_multiple_themes"`
}

// Cache holds memoization tuning. TTL is a Go duration string ("1h").
type Cache struct {
	TTL          string `yaml:"ttl"`
	MaxEntries   int    `yaml:"max_entries"`
	SamplePosts  int    `yaml:"sample_posts"`
	CaptionChars int    `yaml:"caption_chars"`
}

// LoadEngine loads engine tuning from a YAML file.
func LoadEngine(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var eng Engine
	if err := yaml.Unmarshal(data, &eng); err != nil {
		return nil, err
	}
	if err := eng.Validate(); err != nil {
		return nil, err
	}
	return &eng, nil
}

// Validate checks threshold ranges and the TTL string.
func (e *Engine) Validate() error {
	if e.Matcher.FuzzyThreshold < 0 || e.Matcher.FuzzyThreshold > 100 {
		return fmt.Errorf("%w: fuzzy_threshold %d outside 0-100", internalerr.ErrInvalidConfig, e.Matcher.FuzzyThreshold)
	}
	if e.Matcher.DistributionThreshold < 0 || e.Matcher.DistributionThreshold > 100 {
		return fmt.Errorf("%w: distribution_threshold %d outside 0-100", internalerr.ErrInvalidConfig, e.Matcher.DistributionThreshold)
	}
	if _, err := e.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses the configured TTL, returning zero for an empty string
// so the cache layer's default applies.
func (e *Engine) CacheTTL() (time.Duration, error) {
	if e.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(e.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("%w: cache ttl %q: %v", internalerr.ErrInvalidConfig, e.Cache.TTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: cache ttl %q must be positive", internalerr.ErrInvalidConfig, e.Cache.TTL)
	}
	return d, nil
}
