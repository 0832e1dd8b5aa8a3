package taxonomy

import (
	"sort"
	"strings"
	"testing"
)

func TestNewPreservesOrder(t *testing.T) {
	tax := New([]Theme{
		{Name: "alpha", Keywords: []string{"A", "B"}},
		{Name: "beta", Keywords: []string{"C"}},
		{Name: "gamma", Keywords: []string{"D"}},
	})

	names := tax.Names()
	want := []string{"alpha", "beta", "gamma"}
	if len(names) != len(want) {
		t.Fatalf("expected %d themes, got %d", len(want), len(names))
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("theme %d: expected %q, got %q", i, n, names[i])
		}
	}
}

func TestNewSkipsDuplicatesAndEmptyNames(t *testing.T) {
	tax := New([]Theme{
		{Name: "alpha", Keywords: []string{"a"}},
		{Name: "", Keywords: []string{"b"}},
		{Name: "alpha", Keywords: []string{"c"}},
	})

	if tax.Len() != 1 {
		t.Fatalf("expected 1 theme, got %d", tax.Len())
	}
	kws, ok := tax.Keywords("alpha")
	if !ok || len(kws) != 1 || kws[0] != "a" {
		t.Errorf("first alpha definition should win, got %v", kws)
	}
}

func TestLoweredKeywords(t *testing.T) {
	tax := New([]Theme{{Name: "tech", Keywords: []string{"IoT", "Smart Home"}}})

	low := tax.Lowered()[0].Keywords
	if low[0] != "iot" || low[1] != "smart home" {
		t.Errorf("expected lowercased keywords, got %v", low)
	}
	// Original case survives on the Themes side.
	orig, _ := tax.Keywords("tech")
	if orig[0] != "IoT" {
		t.Errorf("expected original case preserved, got %v", orig)
	}
}

func TestAllKeywordsDeduplicatedAndSorted(t *testing.T) {
	tax := New([]Theme{
		{Name: "a", Keywords: []string{"pool", "gym"}},
		{Name: "b", Keywords: []string{"gym", "spa"}},
	})

	all := tax.AllKeywords()
	if !sort.StringsAreSorted(all) {
		t.Errorf("AllKeywords should be sorted, got %v", all)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 unique keywords, got %v", all)
	}
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	if tax.Len() < 15 {
		t.Fatalf("built-in taxonomy suspiciously small: %d themes", tax.Len())
	}
	if tax.Names()[0] != "Sustainability" {
		t.Errorf("expected Sustainability first, got %q", tax.Names()[0])
	}
	if tax.Has(Others) {
		t.Error("Others must not be a taxonomy theme")
	}

	kws, ok := tax.Keywords("Smart Home Technology")
	if !ok {
		t.Fatal("missing Smart Home Technology theme")
	}
	found := false
	for _, kw := range kws {
		if strings.EqualFold(kw, "smart lights") {
			found = true
		}
	}
	if !found {
		t.Error("Smart Home Technology should include 'smart lights'")
	}
}
