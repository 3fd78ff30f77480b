package normalize

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/yield/pkg/yield/stoplist"
)

type fakeCategorizer map[string][]string

func (f fakeCategorizer) Categorize(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, f[t]...)
	}
	return out
}

func newTestNormalizer() *Normalizer {
	return New(Options{
		Stoplist: stoplist.Default(),
		Phrases:  DefaultPhrases,
		Categorizer: fakeCategorizer{
			"carrot":   {"root", "vegetable"},
			"tomato":   {"vegetable", "fruit"},
			"scallion": {"vegetable"},
		},
	})
}

func TestTokenizerBasic(t *testing.T) {
	tok := NewTokenizer(stoplist.Default())

	got := tok.Tokenize("The Fresh Organic Carrots")
	want := []string{"carrot"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizerEmpty(t *testing.T) {
	tok := NewTokenizer(nil)
	for _, in := range []string{"", "   ", "\t\n", "!!!"} {
		if got := tok.Tokenize(in); len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want empty", in, got)
		}
	}
}

func TestTokenizerDropsNumbersAndSingleLetters(t *testing.T) {
	tok := NewTokenizer(nil)
	got := tok.Tokenize("2 x 500 onions")
	if !reflect.DeepEqual(got, []string{"onion"}) {
		t.Errorf("got %v", got)
	}
}

func TestTokenizerFoldsAccents(t *testing.T) {
	tok := NewTokenizer(nil)
	got := tok.Tokenize("Sautéed Jalapeños")
	want := []string{"sauteed", "jalapeno"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSingularize(t *testing.T) {
	cases := map[string]string{
		"cherries":  "cherry",
		"leaves":    "leaf",
		"potatoes":  "potato",
		"carrots":   "carrot",
		"peas":      "pea",
		"olives":    "olive",
		"asparagus": "asparagus",
		"bass":      "bass",
		"pies":      "pie",
		"gas":       "gas",
		"peaches":   "peach",
		"onion":     "onion",
	}
	for in, want := range cases {
		if got := Singularize(in); got != want {
			t.Errorf("Singularize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitPhrase(t *testing.T) {
	cases := []struct {
		in, base, desc string
	}{
		{"carrot (peeled, diced)", "carrot", "peeled, diced"},
		{"chicken thigh, boneless", "chicken thigh", ", boneless"},
		{"salmon - skin on", "salmon", "- skin on"},
		{"onion", "onion", ""},
		{"  ", "", ""},
	}
	for _, c := range cases {
		base, desc := SplitPhrase(c.in)
		if base != c.base {
			t.Errorf("SplitPhrase(%q) base = %q, want %q", c.in, base, c.base)
		}
		if strings.TrimSpace(desc) != c.desc {
			t.Errorf("SplitPhrase(%q) desc = %q, want %q", c.in, desc, c.desc)
		}
	}
}

func TestNormalizeParenthesizedDescriptors(t *testing.T) {
	n := newTestNormalizer()
	tgt := n.Normalize("carrot (peeled, diced)", "")

	if !reflect.DeepEqual(tgt.NameTokens, []string{"carrot"}) {
		t.Errorf("NameTokens = %v", tgt.NameTokens)
	}
	if !tgt.Descriptors.Has("peeled") || !tgt.Descriptors.Has("diced") {
		t.Errorf("Descriptors = %v", tgt.Descriptors.Sorted())
	}
	if !tgt.Categories.Has("root") {
		t.Errorf("Categories = %v", tgt.Categories.Sorted())
	}
}

func TestNormalizePrepUnionedIntoDescriptors(t *testing.T) {
	n := newTestNormalizer()
	tgt := n.Normalize("tomato", "Roughly Chopped")

	if !tgt.Prep.Has("chopped") || !tgt.Descriptors.Has("chopped") {
		t.Errorf("prep should appear in both sets: prep=%v desc=%v", tgt.Prep.Sorted(), tgt.Descriptors.Sorted())
	}
	if !tgt.Categories.Has("fruit") || !tgt.Categories.Has("vegetable") {
		t.Errorf("tomato should carry both categories, got %v", tgt.Categories.Sorted())
	}
}

func TestNormalizeStableUnderPunctuation(t *testing.T) {
	n := newTestNormalizer()
	a := n.Normalize("Carrot, Peeled", "")
	b := n.Normalize("carrot   peeled", "")

	if !reflect.DeepEqual(a.NameTokens, b.NameTokens) {
		t.Errorf("name tokens differ: %v vs %v", a.NameTokens, b.NameTokens)
	}
	if !reflect.DeepEqual(a.Descriptors.Sorted(), b.Descriptors.Sorted()) {
		t.Errorf("descriptors differ: %v vs %v", a.Descriptors.Sorted(), b.Descriptors.Sorted())
	}
}

func TestNormalizePhrases(t *testing.T) {
	n := newTestNormalizer()
	tgt := n.Normalize("Green Onions, sliced", "")
	if !reflect.DeepEqual(tgt.NameTokens, []string{"scallion"}) {
		t.Fatalf("NameTokens = %v", tgt.NameTokens)
	}
	// category from the phrase entry plus the categorizer
	if !tgt.Categories.Has("bulb") || !tgt.Categories.Has("vegetable") {
		t.Errorf("Categories = %v", tgt.Categories.Sorted())
	}

	tgt = n.Normalize("prawns", "")
	if !reflect.DeepEqual(tgt.NameTokens, []string{"shrimp"}) {
		t.Errorf("prawns → %v", tgt.NameTokens)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	n := newTestNormalizer()
	tgt := n.Normalize("   ", "")
	if !tgt.Empty() {
		t.Errorf("expected empty target, got %+v", tgt)
	}
	if len(tgt.Categories) != 0 {
		t.Errorf("expected no categories, got %v", tgt.Categories.Sorted())
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := newTestNormalizer()
	a := n.Normalize("Whole Chicken (skinless, deboned)", "grilled")
	b := n.Normalize("Whole Chicken (skinless, deboned)", "grilled")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("normalization is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestSetShared(t *testing.T) {
	a := NewSet("x", "y", "z")
	b := NewSet("y", "z", "w")
	if got := a.Shared(b); got != 2 {
		t.Errorf("Shared = %d, want 2", got)
	}
	var empty Set
	if empty.Has("x") || empty.Shared(a) != 0 {
		t.Error("nil set should be empty")
	}
}
