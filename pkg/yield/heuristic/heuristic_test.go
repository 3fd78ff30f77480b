package heuristic

import (
	"testing"

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

func TestCascadeBranches(t *testing.T) {
	n := testNormalizer()
	c := Default()

	cases := []struct {
		item, prep string
		percent    float64
		ruleID     string
	}{
		{"salt", "", 100, "heuristic:pantry"},
		{"kosher salt", "", 100, "heuristic:pantry"},
		{"olive oil", "", 100, "heuristic:pantry"},
		{"kiwi", "peeled", 82, "heuristic:outer-layer:fruit"},
		{"tomato", "peeled", 82, "heuristic:outer-layer:fruit"},
		{"leek", "peeled", 78, "heuristic:outer-layer:bulb"},
		{"parsnip", "peeled", 84, "heuristic:outer-layer:root"},
		{"mussel", "shucked", 65, "heuristic:outer-layer:seafood"},
		{"duck", "skinned", 72, "heuristic:outer-layer:poultry"},
		{"tofu", "peeled", 74, "heuristic:outer-layer:protein"},
		{"mystery", "peeled", 86, "heuristic:outer-layer"},
		{"cod", "trimmed", 68, "heuristic:trim:seafood"},
		{"turkey", "trimmed", 74, "heuristic:trim:poultry"},
		{"lamb", "fabricated", 78, "heuristic:trim:protein"},
		{"lettuce", "trimmed", 92, "heuristic:trim:leaf"},
		{"fennel", "trimmed", 88, "heuristic:trim:bulb"},
		{"turnip", "trimmed", 88, "heuristic:trim:root"},
		{"zucchini", "trimmed", 90, "heuristic:trim:produce"},
		{"mystery", "trimmed", 78, "heuristic:trim"},
		{"onion", "julienned", 88, "heuristic:knife:bulb"},
		{"parsnip", "diced", 90, "heuristic:knife:root"},
		{"basil", "chiffonade", 92, "heuristic:knife:leaf"},
		{"apple", "sliced", 91, "heuristic:knife:fruit"},
		{"tuna", "diced", 82, "heuristic:knife:seafood"},
		{"chicken", "diced", 80, "heuristic:knife:poultry"},
		{"pork", "minced", 85, "heuristic:knife:protein"},
		{"zucchini", "sliced", 93, "heuristic:knife"},
		{"lamb", "roasted", 78, "heuristic:high-heat:protein"},
		{"beet", "roasted", 88, "heuristic:high-heat"},
		{"eggplant", "sautéed", 88, "heuristic:high-heat"},
		{"chicken thigh", "braised", 90, "heuristic:moist-heat:protein"},
		{"broccoli", "sous-vide", 95, "heuristic:moist-heat"},
		{"halibut", "", 70, "heuristic:category:seafood"},
		{"quail", "", 74, "heuristic:category:poultry"},
		{"veal", "", 78, "heuristic:category:protein"},
		{"garlic", "", 90, "heuristic:category:bulb"},
		{"turnip", "", 92, "heuristic:category:root"},
		{"kale", "", 94, "heuristic:category:leaf"},
		{"fig", "", 92, "heuristic:category:fruit"},
		{"okra", "", 95, "heuristic:category:vegetable"},
		{"unobtainium", "", 100, "heuristic:fallback"},
		{"", "", 100, "heuristic:fallback"},
	}

	for _, tc := range cases {
		est := c.Estimate(n.Normalize(tc.item, tc.prep))
		if est.Percent != tc.percent || est.RuleID != tc.ruleID {
			t.Errorf("%s/%s: got %v %s, want %v %s", tc.item, tc.prep, est.Percent, est.RuleID, tc.percent, tc.ruleID)
		}
		if est.Reason == "" {
			t.Errorf("%s/%s: empty reason", tc.item, tc.prep)
		}
	}
}

func TestCascadeProduceLastResort(t *testing.T) {
	tgt := normalize.Target{
		NameTokens: []string{"lovage"},
		Categories: normalize.NewSet(taxonomy.Herb),
	}
	est := Default().Estimate(tgt)
	if est.Percent != 96 || est.RuleID != "heuristic:fallback:produce" {
		t.Errorf("got %v %s", est.Percent, est.RuleID)
	}
}

func TestCascadePantryNeedsNonProduce(t *testing.T) {
	n := testNormalizer()
	// "pepper" is a vegetable, so "salt and pepper" is not a pure staple.
	est := Default().Estimate(n.Normalize("salt and pepper", ""))
	if est.RuleID == "heuristic:pantry" {
		t.Errorf("produce present, pantry branch should not fire: %+v", est)
	}
}

func TestCascadeCustomFamilies(t *testing.T) {
	n := testNormalizer()
	f := DefaultFamilies()
	f.Knife = append(f.Knife, "batonnet")
	c := New(f)
	est := c.Estimate(n.Normalize("potato", "batonnet"))
	if est.RuleID != "heuristic:knife:root" {
		t.Errorf("got %s", est.RuleID)
	}
}
