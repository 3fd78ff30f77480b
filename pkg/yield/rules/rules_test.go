package rules

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

func TestIngredientRuleOutranksCategoryRule(t *testing.T) {
	n := testNormalizer()
	tbl := Default()

	m, ok := tbl.Lookup(n.Normalize("carrot", "peeled"))
	if !ok {
		t.Fatal("expected a rule match")
	}
	if m.Rule.ID != "carrot-peeled" || m.Rule.Percent != 82 {
		t.Errorf("got %s (%v), want carrot-peeled (82)", m.Rule.ID, m.Rule.Percent)
	}
	// priority 2 + ingredient 5 + prep 2
	if m.Score != 9 {
		t.Errorf("score = %v, want 9", m.Score)
	}
}

func TestCategoryRuleApplies(t *testing.T) {
	n := testNormalizer()
	m, ok := Default().Lookup(n.Normalize("parsnip", "peeled"))
	if !ok {
		t.Fatal("expected root-peeled")
	}
	if m.Rule.ID != "root-peeled" || m.Rule.Percent != 84 {
		t.Errorf("got %s (%v)", m.Rule.ID, m.Rule.Percent)
	}
}

func TestPrepInItemTextCounts(t *testing.T) {
	n := testNormalizer()
	m, ok := Default().Lookup(n.Normalize("carrot (peeled)", ""))
	if !ok || m.Rule.ID != "carrot-peeled" {
		t.Errorf("got %+v, %v", m, ok)
	}
}

func TestFailedFieldDisqualifies(t *testing.T) {
	n := testNormalizer()
	tbl := MustNew([]Rule{
		{ID: "carrot-roasted", Percent: 70, Priority: 100, Ingredients: []string{"carrot"}, Prep: []string{"roasted"}},
	})
	if _, ok := tbl.Lookup(n.Normalize("carrot", "peeled")); ok {
		t.Error("a rule with a failed prep field must not match, whatever its priority")
	}
	if _, ok := tbl.Lookup(n.Normalize("", "")); ok {
		t.Error("empty target must not match")
	}
}

func TestNoRuleForPantry(t *testing.T) {
	n := testNormalizer()
	if m, ok := Default().Lookup(n.Normalize("salt", "")); ok {
		t.Errorf("salt should fall through, matched %s", m.Rule.ID)
	}
}

func TestTieKeepsTableOrder(t *testing.T) {
	n := testNormalizer()
	tbl := MustNew([]Rule{
		{ID: "a", Percent: 10, Category: taxonomy.Leaf},
		{ID: "b", Percent: 20, Category: taxonomy.Vegetable},
	})
	m, ok := tbl.Lookup(n.Normalize("kale", ""))
	if !ok || m.Rule.ID != "a" {
		t.Errorf("tie should favor the first rule, got %+v", m)
	}
}

func TestHigherScoreWins(t *testing.T) {
	n := testNormalizer()
	tbl := MustNew([]Rule{
		{ID: "generic", Percent: 10, Category: taxonomy.Leaf},
		{ID: "specific", Percent: 20, Category: taxonomy.Leaf, Descriptors: []string{"chopped"}},
	})
	m, _ := tbl.Lookup(n.Normalize("kale, chopped", ""))
	if m.Rule.ID != "specific" || m.Score != 5 {
		t.Errorf("got %+v", m)
	}
}

func TestNewTableValidation(t *testing.T) {
	cases := map[string][]Rule{
		"no id":            {{Percent: 50, Category: "root"}},
		"no discriminator": {{ID: "x", Percent: 50, Priority: 3}},
		"negative":         {{ID: "x", Percent: -1, Category: "root"}},
		"nan":              {{ID: "x", Percent: math.NaN(), Category: "root"}},
		"inf priority":     {{ID: "x", Percent: 50, Category: "root", Priority: math.Inf(1)}},
		"blank tokens":     {{ID: "x", Percent: 50, Ingredients: []string{"  "}}},
		"duplicate":        {{ID: "x", Percent: 50, Category: "root"}, {ID: "x", Percent: 40, Category: "leaf"}},
	}
	for name, rs := range cases {
		_, err := NewTable(rs)
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestNewTableClampsAndDefaultsReason(t *testing.T) {
	tbl, err := NewTable([]Rule{{ID: "big", Percent: 123456, Category: "pantry"}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	r := tbl.Rules()[0]
	if r.Percent != 9999 {
		t.Errorf("percent = %v, want 9999", r.Percent)
	}
	if r.Reason == "" {
		t.Error("reason should default")
	}
}

func TestDefaultRulesValid(t *testing.T) {
	if Default().Len() != len(DefaultRules) {
		t.Error("default rules failed to compile")
	}
}
