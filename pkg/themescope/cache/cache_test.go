package cache

import (
	"log"
	"strings"
	"testing"
	"time"

	"github.com/proplens/themescope/pkg/themescope/aggregate"
	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/match"
	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

func testAggregator() *aggregate.Aggregator {
	tax := taxonomy.New([]taxonomy.Theme{
		{Name: "Sustainability", Keywords: []string{"solar"}},
		{Name: "Lifestyle", Keywords: []string{"luxury"}},
	})
	return aggregate.New(match.New(tax))
}

func testCorpus() corpus.Corpus {
	return corpus.Corpus{{
		Username: "green_dev",
		Posts: []corpus.Post{
			{UploadDate: "2024-03-15", Caption: "solar panels everywhere"},
			{UploadDate: "2024-03-20", Caption: "luxury penthouse tour"},
		},
	}}
}

func TestFingerprintStable(t *testing.T) {
	f := Fingerprinter{SamplePosts: 5, CaptionChars: 50}
	data := testCorpus()

	a := f.Fingerprint(data)
	b := f.Fingerprint(testCorpus())
	if a != b {
		t.Errorf("identical corpora must fingerprint identically: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %q", a)
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	f := Fingerprinter{SamplePosts: 5, CaptionChars: 50}
	base := f.Fingerprint(testCorpus())

	renamed := testCorpus()
	renamed[0].Username = "city_homes"
	if f.Fingerprint(renamed) == base {
		t.Error("username change must change the fingerprint")
	}

	extra := testCorpus()
	extra[0].Posts = append(extra[0].Posts, corpus.Post{UploadDate: "2024-04-01"})
	if f.Fingerprint(extra) == base {
		t.Error("post count change must change the fingerprint")
	}

	edited := testCorpus()
	edited[0].Posts[0].Caption = "wind turbines everywhere"
	if f.Fingerprint(edited) == base {
		t.Error("sampled caption change must change the fingerprint")
	}
}

func TestFingerprintWindowBlindness(t *testing.T) {
	f := Fingerprinter{SamplePosts: 1, CaptionChars: 5}
	base := testCorpus()

	// The second post sits outside a 1-post sample window; editing it must
	// not move the fingerprint.
	beyondWindow := testCorpus()
	beyondWindow[0].Posts[1].Caption = "completely different text"
	if f.Fingerprint(base) != f.Fingerprint(beyondWindow) {
		t.Error("edit beyond the sample window should not change the fingerprint")
	}

	// Same for caption bytes past the rune budget.
	longTail := testCorpus()
	longTail[0].Posts[0].Caption = "solar farm"
	trimmed := testCorpus()
	trimmed[0].Posts[0].Caption = "solar panels"
	if f.Fingerprint(longTail) != f.Fingerprint(trimmed) {
		t.Error("caption bytes past CaptionChars should not change the fingerprint")
	}
}

func TestFingerprintMultibyteCaption(t *testing.T) {
	f := Fingerprinter{SamplePosts: 5, CaptionChars: 2}
	data := corpus.Corpus{{Username: "a", Posts: []corpus.Post{{Caption: "héllo"}}}}

	// Must not panic or split a rune; only checking it runs and is stable.
	if f.Fingerprint(data) != f.Fingerprint(data) {
		t.Error("fingerprint of multibyte caption must be deterministic")
	}
}

func TestThemeDistributionMemoized(t *testing.T) {
	c := New(testAggregator(), DefaultConfig(), nil)
	data := testCorpus()

	first := c.ThemeDistribution(data, true, 80)
	if first["Sustainability"] != 1 || first["Lifestyle"] != 1 {
		t.Fatalf("unexpected distribution %v", first)
	}

	// Mutate the corpus outside the fingerprint window: same key, so the
	// stale memoized value must come back.
	data[0].Posts[1].Caption = "solar solar solar"
	second := c.ThemeDistribution(data, true, 80)
	if second["Lifestyle"] != 1 {
		t.Errorf("expected stale memoized result, got recompute %v", second)
	}
}

func TestThemeDistributionOverTimeMemoized(t *testing.T) {
	c := New(testAggregator(), DefaultConfig(), nil)
	data := testCorpus()

	first := c.ThemeDistributionOverTime(data)
	if len(first) != 2 {
		t.Fatalf("unexpected series %v", first)
	}

	data[0].Posts[1].Caption = "solar again"
	second := c.ThemeDistributionOverTime(data)
	if len(second) != 2 || second[1].Theme != "Lifestyle" {
		t.Errorf("expected stale memoized series, got %v", second)
	}
}

func TestTTLExpiry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TTL = 20 * time.Millisecond
	c := New(testAggregator(), cfg, nil)
	data := testCorpus()

	c.ThemeDistribution(data, true, 80)
	data[0].Posts[1].Caption = "solar instead"

	time.Sleep(60 * time.Millisecond)

	// Entry expired; even with an identical fingerprint the value is
	// recomputed and now sees the edited caption.
	dist := c.ThemeDistribution(data, true, 80)
	if dist["Sustainability"] != 2 {
		t.Errorf("expected recompute after TTL, got %v", dist)
	}
	if dist["Lifestyle"] != 0 {
		t.Errorf("expired entry must not survive, got %v", dist)
	}
}

func TestDistinctCorporaDistinctEntries(t *testing.T) {
	c := New(testAggregator(), DefaultConfig(), nil)

	solar := corpus.Corpus{{Username: "a", Posts: []corpus.Post{{Caption: "solar"}}}}
	luxury := corpus.Corpus{{Username: "b", Posts: []corpus.Post{{Caption: "luxury"}}}}

	if got := c.ThemeDistribution(solar, true, 80); got["Sustainability"] != 1 {
		t.Errorf("solar corpus distribution = %v", got)
	}
	if got := c.ThemeDistribution(luxury, true, 80); got["Lifestyle"] != 1 {
		t.Errorf("luxury corpus distribution = %v", got)
	}
}

func TestComputePanicDegradesToEmpty(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf, "", 0)

	got := compute(logger, "deadbeef", func() map[string]int {
		panic("classifier bug")
	}, map[string]int{})

	if len(got) != 0 {
		t.Errorf("panic must degrade to the empty fallback, got %v", got)
	}
	if !strings.Contains(buf.String(), "deadbeef") || !strings.Contains(buf.String(), "classifier bug") {
		t.Errorf("failure must be logged with key and cause, got %q", buf.String())
	}
}

func TestConfigWithDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	if got != DefaultConfig() {
		t.Errorf("zero config should fill to defaults, got %+v", got)
	}

	partial := Config{TTL: time.Minute}.withDefaults()
	if partial.TTL != time.Minute {
		t.Errorf("explicit TTL must survive, got %v", partial.TTL)
	}
	if partial.MaxEntries != DefaultConfig().MaxEntries {
		t.Errorf("unset fields must default, got %+v", partial)
	}
}
