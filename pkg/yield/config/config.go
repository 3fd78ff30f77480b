package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/reference"
	"github.com/cognicore/yield/pkg/yield/rules"
)

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	return nil
}

// Stoplist represents the stopword list configuration. With Extend set the
// terms are added to the built-in list instead of replacing it.
type Stoplist struct {
	Terms  []string `yaml:"terms"`
	Extend bool     `yaml:"extend"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	var sl Stoplist
	if err := readYAML(path, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}

// Taxonomy maps a category name to the ingredient tokens carrying it.
type Taxonomy struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadTaxonomy loads the category table from a YAML file
func LoadTaxonomy(path string) (*Taxonomy, error) {
	var tax Taxonomy
	if err := readYAML(path, &tax); err != nil {
		return nil, err
	}
	return &tax, nil
}

// LoadDict loads the phrase dictionary.
// Format: canonical|variant1|variant2|category
// The category field may be empty; lines with fewer than three fields are
// rejected.
func LoadDict(path string) ([]normalize.PhraseEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []normalize.PhraseEntry
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: %s:%d: want canonical|variant...|category", internalerr.ErrInvalidConfig, path, n+1)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty canonical", internalerr.ErrInvalidConfig, path, n+1)
		}

		entries = append(entries, normalize.PhraseEntry{
			Canonical: parts[0],
			Variants:  parts[1 : len(parts)-1],
			Category:  parts[len(parts)-1],
		})
	}
	return entries, nil
}

// ReferenceFile is the YAML layout of a reference dataset. Thresholds
// override individual scoring constants; omitted ones keep their defaults.
type ReferenceFile struct {
	Thresholds struct {
		NameWeight         *float64 `yaml:"name_weight"`
		DescriptorWeight   *float64 `yaml:"descriptor_weight"`
		PrepWeight         *float64 `yaml:"prep_weight"`
		CrossWeight        *float64 `yaml:"cross_weight"`
		CategoryWeight     *float64 `yaml:"category_weight"`
		PrepMismatchFactor *float64 `yaml:"prep_mismatch_factor"`
		MethodMinScore     *float64 `yaml:"method_min_score"`
		MinScore           *float64 `yaml:"min_score"`
	} `yaml:"thresholds"`
	Records []struct {
		ID         string   `yaml:"id"`
		Ingredient string   `yaml:"ingredient"`
		Method     string   `yaml:"method"`
		Yield      *float64 `yaml:"yield"`
		Notes      string   `yaml:"notes"`
	} `yaml:"records"`
}

// LoadReference loads reference records and thresholds from a YAML file.
// A record without a yield is kept as undefined so index construction
// rejects it.
func LoadReference(path string) ([]reference.Record, reference.Thresholds, error) {
	var f ReferenceFile
	th := reference.DefaultThresholds()
	if err := readYAML(path, &f); err != nil {
		return nil, th, err
	}

	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&th.NameWeight, f.Thresholds.NameWeight)
	override(&th.DescriptorWeight, f.Thresholds.DescriptorWeight)
	override(&th.PrepWeight, f.Thresholds.PrepWeight)
	override(&th.CrossWeight, f.Thresholds.CrossWeight)
	override(&th.CategoryWeight, f.Thresholds.CategoryWeight)
	override(&th.PrepMismatchFactor, f.Thresholds.PrepMismatchFactor)
	override(&th.MethodMinScore, f.Thresholds.MethodMinScore)
	override(&th.MinScore, f.Thresholds.MinScore)

	records := make([]reference.Record, len(f.Records))
	for i, r := range f.Records {
		records[i] = reference.Record{
			ID:         r.ID,
			Ingredient: r.Ingredient,
			Method:     r.Method,
			Yield:      orUndefined(r.Yield),
			Notes:      r.Notes,
		}
	}
	return records, th, nil
}

// RulesFile is the YAML layout of a rule table.
type RulesFile struct {
	Rules []struct {
		ID          string   `yaml:"id"`
		Percent     *float64 `yaml:"percent"`
		Reason      string   `yaml:"reason"`
		Ingredients []string `yaml:"ingredients"`
		Descriptors []string `yaml:"descriptors"`
		Prep        []string `yaml:"prep"`
		Category    string   `yaml:"category"`
		Priority    float64  `yaml:"priority"`
	} `yaml:"rules"`
}

// LoadRules loads the rule table from a YAML file, preserving file order.
func LoadRules(path string) ([]rules.Rule, error) {
	var f RulesFile
	if err := readYAML(path, &f); err != nil {
		return nil, err
	}
	out := make([]rules.Rule, len(f.Rules))
	for i, r := range f.Rules {
		out[i] = rules.Rule{
			ID:          r.ID,
			Percent:     orUndefined(r.Percent),
			Reason:      r.Reason,
			Ingredients: r.Ingredients,
			Descriptors: r.Descriptors,
			Prep:        r.Prep,
			Category:    r.Category,
			Priority:    r.Priority,
		}
	}
	return out, nil
}

func orUndefined(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
