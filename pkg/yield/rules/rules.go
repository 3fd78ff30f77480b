package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/percent"
)

// Field weights added when a rule's declared field is satisfied.
const (
	IngredientWeight = 5
	CategoryWeight   = 3
	DescriptorWeight = 2
	PrepWeight       = 2
)

// Rule is one hand-authored yield rule. Every declared field must be
// satisfied for the rule to apply; within a field any listed token suffices.
type Rule struct {
	ID          string
	Percent     float64
	Reason      string
	Ingredients []string
	Descriptors []string
	Prep        []string
	Category    string
	Priority    float64
}

type compiled struct {
	Rule
	ingredients normalize.Set
	descriptors normalize.Set
	prep        normalize.Set
}

// Table is an ordered, validated rule set. Order is the tiebreak: among rules
// with equal score the one listed first wins.
type Table struct {
	rules []compiled
}

// NewTable validates rules in order. Each rule needs a unique id, a finite
// non-negative percent, a finite priority and at least one discriminating
// field (ingredient, category, descriptor or prep).
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{rules: make([]compiled, 0, len(rules))}
	seen := make(map[string]int, len(rules))

	for i, r := range rules {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			return nil, fmt.Errorf("%w: rule %d has no id", internalerr.ErrInvalidConfig, i)
		}
		if prev, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: rule %d (%s) duplicates rule %d: %w",
				internalerr.ErrInvalidConfig, i, r.ID, prev, internalerr.ErrDuplicate)
		}
		seen[r.ID] = i

		if err := percent.Validate(r.Percent); err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %v", internalerr.ErrInvalidConfig, i, r.ID, err)
		}
		if math.IsNaN(r.Priority) || math.IsInf(r.Priority, 0) {
			return nil, fmt.Errorf("%w: rule %d (%s): priority %v is not finite", internalerr.ErrInvalidConfig, i, r.ID, r.Priority)
		}

		c := compiled{
			Rule:        r,
			ingredients: tokenSet(r.Ingredients),
			descriptors: tokenSet(r.Descriptors),
			prep:        tokenSet(r.Prep),
		}
		c.Category = strings.ToLower(strings.TrimSpace(r.Category))
		c.Percent = percent.Clamp(r.Percent)
		if c.Reason == "" {
			c.Reason = fmt.Sprintf("Rule %s", r.ID)
		}

		if len(c.ingredients) == 0 && len(c.descriptors) == 0 && len(c.prep) == 0 && c.Category == "" {
			return nil, fmt.Errorf("%w: rule %d (%s) has no discriminating field", internalerr.ErrInvalidConfig, i, r.ID)
		}
		t.rules = append(t.rules, c)
	}
	return t, nil
}

// MustNew is NewTable for compiled-in data.
func MustNew(rules []Rule) *Table {
	t, err := NewTable(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the built-in rule table.
func Default() *Table {
	return MustNew(DefaultRules)
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Rules returns the validated rules in evaluation order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, c := range t.rules {
		out[i] = c.Rule
	}
	return out
}

// Match is the winning rule for a target.
type Match struct {
	Rule  Rule
	Score float64
}

// Lookup returns the highest-scoring applicable rule. Ties keep table order.
func (t *Table) Lookup(tgt normalize.Target) (Match, bool) {
	names := tgt.Names()
	var best Match
	found := false
	for _, c := range t.rules {
		s, ok := c.score(tgt, names)
		if !ok {
			continue
		}
		if !found || s > best.Score {
			best = Match{Rule: c.Rule, Score: s}
			found = true
		}
	}
	return best, found
}

// score is AND-gated: the first declared field that fails disqualifies the rule.
func (c compiled) score(tgt normalize.Target, names normalize.Set) (float64, bool) {
	s := c.Priority
	if len(c.ingredients) > 0 {
		if !anyIn(c.ingredients, names) {
			return 0, false
		}
		s += IngredientWeight
	}
	if c.Category != "" {
		if !tgt.Categories.Has(c.Category) {
			return 0, false
		}
		s += CategoryWeight
	}
	if len(c.descriptors) > 0 {
		if !anyIn(c.descriptors, tgt.Descriptors) {
			return 0, false
		}
		s += DescriptorWeight
	}
	if len(c.prep) > 0 {
		// a preparation written into the item text counts as prep
		if !anyIn(c.prep, tgt.Prep) && !anyIn(c.prep, tgt.Descriptors) {
			return 0, false
		}
		s += PrepWeight
	}
	return s, true
}

func anyIn(want, have normalize.Set) bool {
	for tok := range want {
		if have.Has(tok) {
			return true
		}
	}
	return false
}

func tokenSet(toks []string) normalize.Set {
	s := make(normalize.Set, len(toks))
	for _, tok := range toks {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			s[tok] = struct{}{}
		}
	}
	return s
}
