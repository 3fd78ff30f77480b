package yield

import (
	"github.com/cognicore/yield/pkg/yield/heuristic"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/reference"
	"github.com/cognicore/yield/pkg/yield/rules"
	"github.com/cognicore/yield/pkg/yield/stoplist"
)

// StateWords collects every preparation word the later stages react to:
// the built-in state list, the heuristic's preparation families, rule prep
// and descriptor tokens, and reference methods. Pantry tokens name
// ingredients and are left out, as is any token that appears in a reference
// ingredient name ("fillet" in "salmon fillet").
func StateWords(f heuristic.Families, rs []rules.Rule, records []reference.Record) []string {
	tok := normalize.NewTokenizer(stoplist.Default())

	names := make(normalize.Set)
	for _, rec := range records {
		for _, t := range tok.Tokenize(rec.Ingredient) {
			names[t] = struct{}{}
		}
	}

	out := normalize.NewSet(normalize.DefaultStateWords...)
	add := func(words ...string) {
		for _, w := range words {
			for _, t := range tok.Tokenize(w) {
				if !names.Has(t) {
					out[t] = struct{}{}
				}
			}
		}
	}

	add(f.OuterLayer...)
	add(f.Trim...)
	add(f.Knife...)
	add(f.HighHeat...)
	add(f.MoistHeat...)
	for _, r := range rs {
		add(r.Prep...)
		add(r.Descriptors...)
	}
	for _, rec := range records {
		add(rec.Method)
	}
	return out.Sorted()
}

// DefaultStateWords is StateWords over the compiled-in tables.
func DefaultStateWords() []string {
	return StateWords(heuristic.DefaultFamilies(), rules.DefaultRules, reference.DefaultRecords)
}
