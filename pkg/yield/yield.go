package yield

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cognicore/yield/pkg/yield/heuristic"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/reference"
	"github.com/cognicore/yield/pkg/yield/rules"
	"github.com/cognicore/yield/pkg/yield/stoplist"
	"github.com/cognicore/yield/pkg/yield/taxonomy"
	"github.com/cognicore/yield/pkg/yield/units"
)

// Stage names the cascade stage that produced a match.
type Stage string

const (
	StageReference Stage = "reference"
	StageRule      Stage = "rule"
	StageHeuristic Stage = "heuristic"
)

// Match is a resolved base yield. ComputeBaseYield always returns one.
type Match struct {
	Percent float64
	Reason  string
	RuleID  string
	Stage   Stage
}

// Engine is the yield estimation facade. It is safe for concurrent use:
// every table it holds is built in New and never mutated afterwards.
type Engine struct {
	normalizer *normalize.Normalizer
	reference  *reference.Index
	rules      *rules.Table
	heuristic  *heuristic.Cascade
	log        *slog.Logger
}

// Options configures an Engine. Nil components fall back to the built-in
// defaults.
type Options struct {
	Normalizer *normalize.Normalizer
	Reference  *reference.Index
	Rules      *rules.Table
	Heuristic  *heuristic.Cascade
	Logger     *slog.Logger
}

// DefaultNormalizer builds the normalizer over the built-in stoplist,
// phrase dictionary, category table and state words.
func DefaultNormalizer() *normalize.Normalizer {
	return normalize.New(normalize.Options{
		Stoplist:    stoplist.Default(),
		Phrases:     normalize.DefaultPhrases,
		StateWords:  DefaultStateWords(),
		Categorizer: taxonomy.Default(),
	})
}

// New validates and assembles an Engine. Building the default reference
// index can fail only if the compiled-in dataset is malformed.
func New(opts Options) (*Engine, error) {
	e := &Engine{
		normalizer: opts.Normalizer,
		reference:  opts.Reference,
		rules:      opts.Rules,
		heuristic:  opts.Heuristic,
		log:        opts.Logger,
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.normalizer == nil {
		e.normalizer = DefaultNormalizer()
	}
	if e.reference == nil {
		idx, err := reference.NewIndex(reference.DefaultRecords, e.normalizer, reference.DefaultThresholds())
		if err != nil {
			return nil, fmt.Errorf("build reference index: %w", err)
		}
		e.reference = idx
	}
	if e.rules == nil {
		tbl, err := rules.NewTable(rules.DefaultRules)
		if err != nil {
			return nil, fmt.Errorf("build rule table: %w", err)
		}
		e.rules = tbl
	}
	if e.heuristic == nil {
		e.heuristic = heuristic.Default()
	}

	e.log.Info("yield engine ready",
		"reference_entries", e.reference.Len(),
		"rules", e.rules.Len())
	return e, nil
}

// NewDefault builds an Engine over every compiled-in table.
func NewDefault() (*Engine, error) {
	return New(Options{})
}

// Normalize exposes the engine's normalizer.
func (e *Engine) Normalize(item, prep string) normalize.Target {
	return e.normalizer.Normalize(item, prep)
}

// ComputeBaseYield runs reference → rule → heuristic and returns the first
// answer. The heuristic stage never declines, so the result is always usable.
func (e *Engine) ComputeBaseYield(item, prep string) Match {
	tgt := e.normalizer.Normalize(item, prep)

	if m, ok := e.reference.Lookup(tgt); ok {
		return e.logged(item, prep, fromReference(m))
	}
	if m, ok := e.rules.Lookup(tgt); ok {
		return e.logged(item, prep, fromRule(m))
	}
	return e.logged(item, prep, fromHeuristic(e.heuristic.Estimate(tgt)))
}

// EstimateHeuristicYield skips the reference and rule stages.
func (e *Engine) EstimateHeuristicYield(item, prep string) Match {
	return fromHeuristic(e.heuristic.Estimate(e.normalizer.Normalize(item, prep)))
}

func (e *Engine) logged(item, prep string, m Match) Match {
	e.log.LogAttrs(context.Background(), slog.LevelDebug, "base yield",
		slog.String("item", item),
		slog.String("prep", prep),
		slog.String("stage", string(m.Stage)),
		slog.String("rule_id", m.RuleID),
		slog.Float64("percent", m.Percent))
	return m
}

func fromReference(m reference.Match) Match {
	return Match{Percent: m.Entry.Percent, Reason: m.Entry.Reason, RuleID: m.Entry.ID, Stage: StageReference}
}

func fromRule(m rules.Match) Match {
	return Match{Percent: m.Rule.Percent, Reason: m.Rule.Reason, RuleID: m.Rule.ID, Stage: StageRule}
}

func fromHeuristic(est heuristic.Estimate) Match {
	return Match{Percent: est.Percent, Reason: est.Reason, RuleID: est.RuleID, Stage: StageHeuristic}
}

// Request is one integrated estimate: an ingredient, an optional
// preparation, and optionally a measured input/output pair.
type Request struct {
	Item   string
	Prep   string
	Input  *units.Quantity
	Output *units.Quantity
}

// IntegratedResult is the combined yield plus the base match it was built from.
type IntegratedResult struct {
	Result
	Base Match
	// Measured is the chef yield computed from Input/Output, if any.
	Measured Percent
}

// Estimate resolves the base yield and, when both quantities are given and
// compatible, composes it with the measured yield.
func (e *Engine) Estimate(req Request) IntegratedResult {
	base := e.ComputeBaseYield(req.Item, req.Prep)
	var chef Percent
	if req.Input != nil && req.Output != nil {
		if v, ok := units.ComputeYield(*req.Input, *req.Output); ok {
			chef = Some(v)
		}
	}
	return IntegratedResult{
		Result:   CombineYields(Some(base.Percent), chef),
		Base:     base,
		Measured: chef,
	}
}
