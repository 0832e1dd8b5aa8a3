package match

import (
	"testing"

	"github.com/proplens/themescope/pkg/themescope/taxonomy"
)

func testTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New([]taxonomy.Theme{
		{Name: "Sustainability", Keywords: []string{"solar", "eco", "renewable"}},
		{Name: "Smart Home", Keywords: []string{"smart", "automation"}},
		{Name: "Views", Keywords: []string{"skyline", "waterfront"}},
	})
}

func TestClassifyExactPhase(t *testing.T) {
	m := New(testTaxonomy())

	tests := []struct {
		name string
		blob string
		want []string
	}{
		{"single theme", "brand new solar installation", []string{"Sustainability"}},
		{"two themes", "solar panels and smart lights", []string{"Sustainability", "Smart Home"}},
		{"case insensitive", "SOLAR POWER", []string{"Sustainability"}},
		{"substring inside word", "ecosystem friendly", []string{"Sustainability"}},
		{"no match", "just a plain caption about nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Classify(tt.blob, true, DefaultThreshold)
			if len(got) != len(tt.want) {
				t.Fatalf("Classify(%q) = %v, want %v", tt.blob, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Classify(%q)[%d] = %q, want %q", tt.blob, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClassifySingleThemeTieBreak(t *testing.T) {
	m := New(testTaxonomy())

	// Matches both Sustainability and Smart Home; taxonomy order wins.
	got := m.Classify("solar panels and smart lights", false, DefaultThreshold)
	if len(got) != 1 || got[0] != "Sustainability" {
		t.Errorf("expected first matching theme in taxonomy order, got %v", got)
	}
}

func TestClassifyShortBlobSkipsFuzzy(t *testing.T) {
	m := New(testTaxonomy())

	for _, blob := range []string{"", "ab", " ", "abc"} {
		if got := m.Classify(blob, true, 1); len(got) != 0 {
			t.Errorf("Classify(%q) should be empty for short blobs, got %v", blob, got)
		}
	}
}

func TestClassifyFuzzyFallback(t *testing.T) {
	m := New(testTaxonomy())

	// No exact keyword occurs, but "renewabl" is one edit away from
	// "renewable"; the fallback should catch it at a moderate threshold.
	got := m.Classify("renewabl power for the district", true, 80)
	found := false
	for _, th := range got {
		if th == "Sustainability" {
			found = true
		}
	}
	if !found {
		t.Errorf("fuzzy fallback should match Sustainability, got %v", got)
	}
}

func TestClassifyFuzzyThresholdRespected(t *testing.T) {
	m := New(testTaxonomy())

	// At threshold 100 only a verbatim keyword can reach the score, and
	// none occurs here.
	if got := m.Classify("renewabl power for the district", true, 100); len(got) != 0 {
		t.Errorf("threshold 100 should reject near matches, got %v", got)
	}
}

func TestClassifyFuzzySkipsShortKeywords(t *testing.T) {
	tax := taxonomy.New([]taxonomy.Theme{
		{Name: "Short", Keywords: []string{"eco"}},
	})
	m := New(tax)

	// "eco" has only 3 runes, so it is excluded from the fuzzy phase even
	// at a permissive threshold.
	if got := m.Classify("exo architecture concept", true, 50); len(got) != 0 {
		t.Errorf("3-rune keywords must not fuzzy match, got %v", got)
	}
}

func TestClassifyFuzzyKeywordCap(t *testing.T) {
	keywords := make([]string, 0, FuzzyKeywordCap+1)
	for i := 0; i < FuzzyKeywordCap; i++ {
		keywords = append(keywords, "zzzzqqqq")
	}
	// The matchable keyword sits just past the cap.
	keywords = append(keywords, "waterfront")
	tax := taxonomy.New([]taxonomy.Theme{{Name: "Capped", Keywords: keywords}})
	m := New(tax)

	if got := m.Classify("waterfrot apartments", true, 80); len(got) != 0 {
		t.Errorf("keywords past the fuzzy cap must be ignored, got %v", got)
	}
}

func TestClassifyExactOnly(t *testing.T) {
	m := New(testTaxonomy())

	if got := m.ClassifyExact("renewabl power", true); len(got) != 0 {
		t.Errorf("ClassifyExact must not fuzzy match, got %v", got)
	}
	got := m.ClassifyExact("smart waterfront living", false)
	if len(got) != 1 || got[0] != "Smart Home" {
		t.Errorf("expected first exact theme, got %v", got)
	}
}

func TestClassifyDefaultThreshold(t *testing.T) {
	m := New(testTaxonomy())

	// A non-positive threshold falls back to the default instead of
	// matching everything.
	if got := m.Classify("completely unrelated text", true, 0); len(got) != 0 {
		t.Errorf("zero threshold should use the default, got %v", got)
	}
}

func TestClassifyBuiltinScenario(t *testing.T) {
	m := New(taxonomy.Default())

	got := m.Classify("solar panels and smart lights", true, 80)
	want := map[string]bool{"Sustainability": false, "Smart Home Technology": false}
	for _, th := range got {
		if _, ok := want[th]; ok {
			want[th] = true
		}
	}
	for th, seen := range want {
		if !seen {
			t.Errorf("expected %q in classification, got %v", th, got)
		}
	}
}

func TestClassifyBlankBlob(t *testing.T) {
	m := New(taxonomy.Default())

	// A post with a null caption and no hashtags derives the blob " ".
	if got := m.Classify(" ", true, 60); len(got) != 0 {
		t.Errorf("blank blob must classify to nothing, got %v", got)
	}
}
