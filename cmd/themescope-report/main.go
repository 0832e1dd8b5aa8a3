package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/proplens/themescope/internal/export"
	"github.com/proplens/themescope/pkg/themescope"
	"github.com/proplens/themescope/pkg/themescope/config"
	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/filter"
	"github.com/proplens/themescope/pkg/themescope/store"
	"github.com/proplens/themescope/pkg/themescope/store/sqlite"
)

func main() {
	var (
		input    = flag.String("input", "", "Path to JSON corpus export (either this or --snapshot is required)")
		snapshot = flag.String("snapshot", "", "Path to SQLite snapshot database")
		taxPath  = flag.String("taxonomy", "", "Optional: taxonomy YAML (default: built-in)")
		engPath  = flag.String("config", "", "Optional: engine tuning YAML")
		themes   = flag.String("themes", "", "Comma-separated theme filter")
		keywords = flag.String("keywords", "", "Comma-separated keyword filter")
		accounts = flag.String("accounts", "", "Comma-separated username filter")
		country  = flag.String("countries", "", "Comma-separated country filter")
		from     = flag.String("from", "", "Start date YYYY-MM-DD (requires --to)")
		to       = flag.String("to", "", "End date YYYY-MM-DD (requires --from)")
		topN     = flag.Int("top-keywords", 0, "Keyword ranking size (default 15)")
	)
	flag.Parse()

	if (*input == "") == (*snapshot == "") {
		log.Fatal("exactly one of --input or --snapshot required")
	}

	ctx := context.Background()

	comp, err := (config.Loader{TaxonomyPath: *taxPath, EnginePath: *engPath}).Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	var src corpus.Source
	if *input != "" {
		src = export.FileSource{Path: *input}
	} else {
		st, err := sqlite.Open(ctx, *snapshot)
		if err != nil {
			log.Fatalf("open snapshot %s: %v", *snapshot, err)
		}
		defer st.Close()
		src = store.SourceOf(st)
	}

	engine := themescope.New(themescope.Options{
		Source:                src,
		Taxonomy:              comp.Taxonomy,
		SingleTheme:           !comp.AllowMultipleThemes,
		DistributionThreshold: comp.DistributionThreshold,
		TopKeywords:           *topN,
		Cache:                 comp.CacheConfig,
	})

	criteria, err := buildCriteria(*themes, *keywords, *accounts, *country, *from, *to)
	if err != nil {
		log.Fatal(err)
	}

	rep := engine.Dashboard(ctx, criteria)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func buildCriteria(themes, keywords, accounts, countries, from, to string) (filter.Criteria, error) {
	c := filter.Criteria{
		Themes:    splitList(themes),
		Keywords:  splitList(keywords),
		Accounts:  splitList(accounts),
		Countries: splitList(countries),
	}

	if (from == "") != (to == "") {
		return c, fmt.Errorf("--from and --to must be set together")
	}
	if from != "" {
		start, ok := corpus.ParseDate(from)
		if !ok {
			return c, fmt.Errorf("invalid --from date %q", from)
		}
		end, ok := corpus.ParseDate(to)
		if !ok {
			return c, fmt.Errorf("invalid --to date %q", to)
		}
		if end.Before(start) {
			return c, fmt.Errorf("--to %s precedes --from %s", to, from)
		}
		c.DateRange = &corpus.DateRange{Start: start, End: end}
	}
	return c, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
