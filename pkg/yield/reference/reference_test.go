package reference

import (
	"errors"
	"math"
	"testing"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/stoplist"
	"github.com/cognicore/yield/pkg/yield/taxonomy"
)

func testNormalizer() *normalize.Normalizer {
	return normalize.New(normalize.Options{
		Stoplist:    stoplist.Default(),
		Phrases:     normalize.DefaultPhrases,
		Categorizer: taxonomy.Default(),
	})
}

func defaultIndex(t *testing.T) (*Index, *normalize.Normalizer) {
	t.Helper()
	n := testNormalizer()
	idx, err := NewIndex(DefaultRecords, n, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx, n
}

func TestDefaultDatasetLoads(t *testing.T) {
	idx, _ := defaultIndex(t)
	if idx.Len() != len(DefaultRecords) {
		t.Errorf("Len = %d, want %d", idx.Len(), len(DefaultRecords))
	}
	for _, e := range idx.Entries() {
		if e.Percent < 0 || e.Percent > 9999 {
			t.Errorf("%s: percent %v out of range", e.ID, e.Percent)
		}
		if e.Reason == "" {
			t.Errorf("%s: empty reason", e.ID)
		}
	}
}

func TestLookupExactMethod(t *testing.T) {
	idx, n := defaultIndex(t)

	m, ok := idx.Lookup(n.Normalize("onion", "diced"))
	if !ok {
		t.Fatal("expected onion/diced to match")
	}
	if m.Entry.ID != "ref:onion:diced" || m.Entry.Percent != 88 {
		t.Errorf("got %s at %v", m.Entry.ID, m.Entry.Percent)
	}
	// 8 name + 4 descriptor + 7 prep + 2×2 categories
	if m.Score != 23 {
		t.Errorf("score = %v, want 23", m.Score)
	}
}

func TestLookupPrefersMatchingMethod(t *testing.T) {
	idx, n := defaultIndex(t)

	m, ok := idx.Lookup(n.Normalize("salmon", "skinned"))
	if !ok {
		t.Fatal("expected salmon/skinned to match")
	}
	if m.Entry.ID != "ref:salmon-fillet:skinned" {
		t.Errorf("got %s", m.Entry.ID)
	}
}

func TestLookupPrepMismatchPenalty(t *testing.T) {
	idx, n := defaultIndex(t)

	// chicken shares a name with two method-specific entries, but grilled
	// overlaps neither method: (8 + 2×2) × 0.6 = 7.2 < 8.
	tgt := n.Normalize("chicken thigh", "grilled")
	best, ok := idx.Best(tgt)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if math.Abs(best.Score-7.2) > 1e-9 {
		t.Errorf("best score = %v, want 7.2", best.Score)
	}
	if _, ok := idx.Lookup(tgt); ok {
		t.Error("method-specific entry below 8 must be rejected")
	}
}

func TestLookupNoSharedName(t *testing.T) {
	idx, n := defaultIndex(t)
	for _, item := range []string{"carrot", "salt", "", "unobtainium"} {
		if _, ok := idx.Best(n.Normalize(item, "peeled")); ok {
			t.Errorf("%q should not match any entry", item)
		}
	}
}

func TestLookupMinScore(t *testing.T) {
	n := testNormalizer()
	th := DefaultThresholds()
	th.NameWeight = 4
	idx, err := NewIndex([]Record{{Ingredient: "quince", Yield: 80}}, n, th)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if _, ok := idx.Lookup(n.Normalize("quince", "")); ok {
		t.Error("score 4 is below the floor of 5")
	}
	if m, ok := idx.Best(n.Normalize("quince", "")); !ok || m.Score != 4 {
		t.Errorf("Best = %+v, %v", m, ok)
	}
}

func TestLookupTieKeepsDatasetOrder(t *testing.T) {
	n := testNormalizer()
	idx, err := NewIndex([]Record{
		{ID: "first", Ingredient: "quince", Yield: 80},
		{ID: "second", Ingredient: "quince", Yield: 70},
	}, n, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	m, ok := idx.Lookup(n.Normalize("quince", ""))
	if !ok || m.Entry.ID != "first" {
		t.Errorf("tie should favor the first entry, got %+v", m)
	}
}

func TestCrossMatchScoring(t *testing.T) {
	n := testNormalizer()
	idx, err := NewIndex([]Record{{Ingredient: "chicken breast", Yield: 75}}, n, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	// "breast" arrives as a descriptor and is found in the entry's name.
	m, ok := idx.Lookup(n.Normalize("chicken (breast)", ""))
	if !ok {
		t.Fatal("expected match")
	}
	// 8 name + 3 cross + 2×2 categories
	if m.Score != 15 {
		t.Errorf("score = %v, want 15", m.Score)
	}
}

func TestNewIndexRejectsMalformed(t *testing.T) {
	n := testNormalizer()
	cases := map[string][]Record{
		"negative":  {{Ingredient: "onion", Yield: -1}},
		"undefined": {{Ingredient: "onion", Yield: Undefined}},
		"infinite":  {{Ingredient: "onion", Yield: math.Inf(1)}},
		"no tokens": {{Ingredient: "the fresh", Yield: 80}},
		"duplicate": {{Ingredient: "onion", Yield: 80}, {Ingredient: "Onion", Yield: 70}},
	}
	for name, recs := range cases {
		_, err := NewIndex(recs, n, DefaultThresholds())
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestNewIndexRejectsBadThresholds(t *testing.T) {
	n := testNormalizer()
	recs := []Record{{Ingredient: "onion", Yield: 80}}
	cases := map[string]func(*Thresholds){
		"negative floor":   func(th *Thresholds) { th.MinScore = -1 },
		"undefined factor": func(th *Thresholds) { th.PrepMismatchFactor = math.NaN() },
		"infinite weight":  func(th *Thresholds) { th.NameWeight = math.Inf(1) },
		"negative cross":   func(th *Thresholds) { th.CrossWeight = -3 },
		"undefined method": func(th *Thresholds) { th.MethodMinScore = math.NaN() },
	}
	for name, mutate := range cases {
		th := DefaultThresholds()
		mutate(&th)
		if _, err := NewIndex(recs, n, th); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestNewIndexClampsLargeYields(t *testing.T) {
	n := testNormalizer()
	idx, err := NewIndex([]Record{{Ingredient: "freeze dried pea", Yield: 50000}}, n, DefaultThresholds())
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	if got := idx.Entries()[0].Percent; got != 9999 {
		t.Errorf("percent = %v, want 9999", got)
	}
}
