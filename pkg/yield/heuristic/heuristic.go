package heuristic

import (
	"fmt"

	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/percent"
	"github.com/cognicore/yield/pkg/yield/taxonomy"
)

// Estimate is the cascade's answer. Unlike the reference and rule stages it
// is never absent.
type Estimate struct {
	Percent float64
	Reason  string
	RuleID  string
}

// Families lists the tokens that trigger each branch of the cascade.
type Families struct {
	Pantry     []string
	OuterLayer []string
	Trim       []string
	Knife      []string
	HighHeat   []string
	MoistHeat  []string
}

// DefaultFamilies returns the built-in token families.
func DefaultFamilies() Families {
	return Families{
		Pantry: []string{
			"salt", "sugar", "flour", "starch", "cornstarch", "baking", "bakingsoda",
			"bakingpowder", "yeast", "oil", "oliveoil", "vinegar", "honey", "syrup",
			"molasses", "rice", "pasta", "spice", "peppercorn", "cocoa", "extract",
			"gelatin", "water", "stock", "broth",
		},
		OuterLayer: []string{
			"peeled", "peel", "peeling", "shelled", "shell", "cored", "core", "pitted",
			"seeded", "deseeded", "skinned", "scaled", "hulled", "husked", "shucked", "deveined",
		},
		Trim: []string{
			"trimmed", "trim", "fabricated", "butchered", "cleaned", "deboned", "boned",
			"boneless", "skinless", "filleted", "stemmed", "portioned", "frenched",
		},
		Knife: []string{
			"diced", "dice", "chopped", "chop", "minced", "mince", "sliced", "slice",
			"julienned", "julienne", "cubed", "brunoise", "chiffonade", "shredded",
			"grated", "quartered", "halved", "crushed",
		},
		HighHeat: []string{
			"roasted", "roast", "grilled", "grill", "seared", "sear", "fried", "fry",
			"sauteed", "saute", "smoked", "baked", "broiled", "charred", "toasted",
			"rendered", "griddled",
		},
		MoistHeat: []string{
			"braised", "braise", "stewed", "stew", "poached", "poach", "steamed", "steam",
			"blanched", "blanch", "boiled", "boil", "simmered", "sous", "vide", "confit",
		},
	}
}

type byCategory struct {
	Category string
	Percent  float64
}

// Category-specific yields per branch, checked in order; first present wins.
var (
	outerLayerYields = []byCategory{
		{taxonomy.Fruit, 82}, {taxonomy.Bulb, 78}, {taxonomy.Root, 84},
		{taxonomy.Seafood, 65}, {taxonomy.Poultry, 72}, {taxonomy.Protein, 74},
	}
	trimYields = []byCategory{
		{taxonomy.Seafood, 68}, {taxonomy.Poultry, 74}, {taxonomy.Protein, 78},
		{taxonomy.Leaf, 92}, {taxonomy.Bulb, 88}, {taxonomy.Root, 88},
	}
	knifeYields = []byCategory{
		{taxonomy.Bulb, 88}, {taxonomy.Root, 90}, {taxonomy.Leaf, 92}, {taxonomy.Fruit, 91},
		{taxonomy.Seafood, 82}, {taxonomy.Poultry, 80}, {taxonomy.Protein, 85},
	}
	categoryDefaults = []byCategory{
		{taxonomy.Seafood, 70}, {taxonomy.Poultry, 74}, {taxonomy.Protein, 78},
		{taxonomy.Bulb, 90}, {taxonomy.Root, 92}, {taxonomy.Leaf, 94}, {taxonomy.Fruit, 92},
		{taxonomy.Vegetable, 95},
	}
)

const (
	outerLayerDefault     = 86
	trimProduceDefault    = 90
	trimNonProduceDefault = 78
	knifeDefault          = 93
	highHeatProtein       = 78
	highHeatOther         = 88
	moistHeatProtein      = 90
	moistHeatOther        = 95
	produceLastResort     = 96
	unknownLastResort     = 100
)

// Cascade is the terminal fallback estimator.
type Cascade struct {
	pantry, outer, trim, knife, high, moist normalize.Set
}

// New builds a cascade from token families.
func New(f Families) *Cascade {
	return &Cascade{
		pantry: normalize.NewSet(f.Pantry...),
		outer:  normalize.NewSet(f.OuterLayer...),
		trim:   normalize.NewSet(f.Trim...),
		knife:  normalize.NewSet(f.Knife...),
		high:   normalize.NewSet(f.HighHeat...),
		moist:  normalize.NewSet(f.MoistHeat...),
	}
}

// Default returns a cascade over DefaultFamilies.
func Default() *Cascade {
	return New(DefaultFamilies())
}

// Estimate walks the branches in fixed order and returns the first that
// applies: pantry staple, outer-layer removal, trimming, knife work,
// high-heat cooking, moist-heat cooking, then category defaults.
func (c *Cascade) Estimate(tgt normalize.Target) Estimate {
	tokens := tgt.AllTokens()
	cats := tgt.Categories
	produce, protein := families(cats)

	switch {
	case !produce && !protein && (overlaps(tokens, c.pantry) || cats.Has(taxonomy.Pantry)):
		return estimate(100, "pantry", "", "Pantry staple, nothing is lost")

	case overlaps(tokens, c.outer):
		if bc, ok := firstCategory(cats, outerLayerYields); ok {
			return estimate(bc.Percent, "outer-layer", bc.Category, "Outer layer removal on %s")
		}
		return estimate(outerLayerDefault, "outer-layer", "", "Outer layer removal")

	case overlaps(tokens, c.trim):
		if bc, ok := firstCategory(cats, trimYields); ok {
			return estimate(bc.Percent, "trim", bc.Category, "Trimming loss on %s")
		}
		if produce {
			return estimate(trimProduceDefault, "trim", "produce", "Trimming loss on %s")
		}
		return estimate(trimNonProduceDefault, "trim", "", "Trimming loss")

	case overlaps(tokens, c.knife):
		if bc, ok := firstCategory(cats, knifeYields); ok {
			return estimate(bc.Percent, "knife", bc.Category, "Knife work on %s")
		}
		return estimate(knifeDefault, "knife", "", "Knife work")

	case overlaps(tokens, c.high):
		if protein {
			return estimate(highHeatProtein, "high-heat", taxonomy.Protein, "High-heat cooking loss on %s")
		}
		return estimate(highHeatOther, "high-heat", "", "High-heat cooking loss")

	case overlaps(tokens, c.moist):
		if protein {
			return estimate(moistHeatProtein, "moist-heat", taxonomy.Protein, "Moist-heat cooking loss on %s")
		}
		return estimate(moistHeatOther, "moist-heat", "", "Moist-heat cooking loss")
	}

	if bc, ok := firstCategory(cats, categoryDefaults); ok {
		return estimate(bc.Percent, "category", bc.Category, "Typical yield for %s")
	}
	if produce {
		return estimate(produceLastResort, "fallback", "produce", "Generic yield for %s")
	}
	return estimate(unknownLastResort, "fallback", "", "No loss assumed for unrecognized ingredient")
}

// estimate builds an Estimate whose id is heuristic:<branch>[:<qualifier>].
// reason may contain one %s, filled with the qualifier.
func estimate(pct float64, branch, qualifier, reason string) Estimate {
	id := "heuristic:" + branch
	if qualifier != "" {
		id += ":" + qualifier
		reason = fmt.Sprintf(reason, qualifier)
	}
	return Estimate{Percent: percent.Clamp(pct), Reason: reason, RuleID: id}
}

func families(cats normalize.Set) (produce, protein bool) {
	for c := range cats {
		if taxonomy.IsProduce(c) {
			produce = true
		}
		if taxonomy.IsProtein(c) {
			protein = true
		}
	}
	return produce, protein
}

func firstCategory(cats normalize.Set, table []byCategory) (byCategory, bool) {
	for _, bc := range table {
		if cats.Has(bc.Category) {
			return bc, true
		}
	}
	return byCategory{}, false
}

func overlaps(a, b normalize.Set) bool {
	return a.Shared(b) > 0
}
