package config

import (
	"fmt"
	"log/slog"

	"github.com/cognicore/yield/pkg/yield"
	"github.com/cognicore/yield/pkg/yield/heuristic"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/reference"
	"github.com/cognicore/yield/pkg/yield/rules"
	"github.com/cognicore/yield/pkg/yield/stoplist"
	"github.com/cognicore/yield/pkg/yield/taxonomy"
)

// Loader loads all configuration files and constructs components.
// An empty path keeps the compiled-in default for that table.
type Loader struct {
	StoplistPath  string
	DictPath      string
	TaxonomyPath  string
	ReferencePath string
	RulesPath     string
}

// Components holds the validated tables.
type Components struct {
	Stoplist   *stoplist.Manager
	Taxonomy   *taxonomy.Table
	Normalizer *normalize.Normalizer
	Reference  *reference.Index
	Rules      *rules.Table
	Heuristic  *heuristic.Cascade
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Heuristic: heuristic.Default()}

	comp.Stoplist = stoplist.Default()
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		if sl.Extend {
			for _, term := range sl.Terms {
				comp.Stoplist.Add(term, stoplist.ReasonCustom)
			}
		} else {
			comp.Stoplist = stoplist.FromWords(sl.Terms, stoplist.ReasonCustom)
		}
	}

	phrases := normalize.DefaultPhrases
	if l.DictPath != "" {
		entries, err := LoadDict(l.DictPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
		phrases = entries
	}

	comp.Taxonomy = taxonomy.Default()
	if l.TaxonomyPath != "" {
		tax, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		tbl, err := taxonomy.FromGroups(tax.Categories)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Taxonomy = tbl
	}

	records, th := reference.DefaultRecords, reference.DefaultThresholds()
	if l.ReferencePath != "" {
		var err error
		records, th, err = LoadReference(l.ReferencePath)
		if err != nil {
			return nil, fmt.Errorf("load reference: %w", err)
		}
	}

	ruleList := rules.DefaultRules
	if l.RulesPath != "" {
		var err error
		ruleList, err = LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
	}

	comp.Normalizer = normalize.New(normalize.Options{
		Stoplist:    comp.Stoplist,
		Phrases:     phrases,
		StateWords:  yield.StateWords(heuristic.DefaultFamilies(), ruleList, records),
		Categorizer: comp.Taxonomy,
	})

	idx, err := reference.NewIndex(records, comp.Normalizer, th)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	comp.Reference = idx

	tbl, err := rules.NewTable(ruleList)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	comp.Rules = tbl

	return comp, nil
}

// Engine assembles a yield engine over the loaded components.
func (c *Components) Engine(logger *slog.Logger) (*yield.Engine, error) {
	return yield.New(yield.Options{
		Normalizer: c.Normalizer,
		Reference:  c.Reference,
		Rules:      c.Rules,
		Heuristic:  c.Heuristic,
		Logger:     logger,
	})
}
