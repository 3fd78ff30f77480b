package yield

import (
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/reference"
	"github.com/cognicore/yield/pkg/yield/rules"
)

// ReferenceOutcome records how the reference stage scored a target. Found
// is true when some entry shared a name token; Accepted when it also
// cleared the acceptance floors.
type ReferenceOutcome struct {
	Found    bool
	Accepted bool
	Match    reference.Match
}

// RuleOutcome records the rule stage's winner, if any.
type RuleOutcome struct {
	Found bool
	Match rules.Match
}

// Explanation traces every stage for one item, including stages the
// cascade would not have reached.
type Explanation struct {
	Item      string
	Prep      string
	Target    normalize.Target
	Reference ReferenceOutcome
	Rule      RuleOutcome
	Heuristic Match
	Chosen    Match
}

// Explain runs all three stages independently and reports which one
// ComputeBaseYield would pick.
func (e *Engine) Explain(item, prep string) Explanation {
	tgt := e.normalizer.Normalize(item, prep)
	ex := Explanation{Item: item, Prep: prep, Target: tgt}

	if m, ok := e.reference.Best(tgt); ok {
		ex.Reference = ReferenceOutcome{Found: true, Accepted: e.reference.Accepts(m), Match: m}
	}
	if m, ok := e.rules.Lookup(tgt); ok {
		ex.Rule = RuleOutcome{Found: true, Match: m}
	}
	ex.Heuristic = fromHeuristic(e.heuristic.Estimate(tgt))

	switch {
	case ex.Reference.Accepted:
		ex.Chosen = fromReference(ex.Reference.Match)
	case ex.Rule.Found:
		ex.Chosen = fromRule(ex.Rule.Match)
	default:
		ex.Chosen = ex.Heuristic
	}
	return ex
}
