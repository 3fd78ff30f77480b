package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/cognicore/yield/pkg/yield"
	"github.com/cognicore/yield/pkg/yield/internalerr"
)

func TestLoaderDefaults(t *testing.T) {
	l := &Loader{}
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Stoplist.IsStop("fresh") {
		t.Error("default stoplist should be used")
	}
	e, err := comp.Engine(nil)
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if m := e.ComputeBaseYield("carrot", "peeled"); m.RuleID != "carrot-peeled" {
		t.Errorf("got %+v", m)
	}
}

func TestLoaderStoplistReplaceAndExtend(t *testing.T) {
	replace := writeFile(t, "replace.yaml", "terms: [the, bulk]\n")
	comp, err := (&Loader{StoplistPath: replace}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Stoplist.IsStop("bulk") || comp.Stoplist.IsStop("fresh") {
		t.Error("replacing stoplist should drop the defaults")
	}

	extend := writeFile(t, "extend.yaml", "terms: [bulk]\nextend: true\n")
	comp, err = (&Loader{StoplistPath: extend}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !comp.Stoplist.IsStop("bulk") || !comp.Stoplist.IsStop("fresh") {
		t.Error("extending stoplist should keep the defaults")
	}
}

func TestLoaderTaxonomy(t *testing.T) {
	path := writeFile(t, "taxonomy.yaml", "categories:\n  root: [carrot, parsnip]\n")
	comp, err := (&Loader{TaxonomyPath: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cats := comp.Taxonomy.CategoriesFor("carrot"); len(cats) != 1 || cats[0] != "root" {
		t.Errorf("carrot categories = %v", cats)
	}
	if cats := comp.Taxonomy.CategoriesFor("onion"); len(cats) != 0 {
		t.Errorf("onion should be unknown, got %v", cats)
	}
}

func TestLoaderReferenceAndRules(t *testing.T) {
	ref := writeFile(t, "reference.yaml", `records:
  - ingredient: kohlrabi
    method: peeled
    yield: 70
`)
	rls := writeFile(t, "rules.yaml", `rules:
  - id: salt-sifted
    percent: 97
    ingredients: [salt]
    prep: [sifted]
`)
	comp, err := (&Loader{ReferencePath: ref, RulesPath: rls}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Reference.Len() != 1 || comp.Rules.Len() != 1 {
		t.Fatalf("sizes = %d, %d", comp.Reference.Len(), comp.Rules.Len())
	}

	e, err := comp.Engine(nil)
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if m := e.ComputeBaseYield("kohlrabi", "peeled"); m.Stage != yield.StageReference || m.Percent != 70 {
		t.Errorf("kohlrabi = %+v", m)
	}
	if m := e.ComputeBaseYield("salt", "sifted"); m.RuleID != "salt-sifted" {
		t.Errorf("salt = %+v", m)
	}
}

func TestLoaderRejectsMalformedData(t *testing.T) {
	cases := map[string]Loader{
		"reference without yield": {ReferencePath: writeFile(t, "r.yaml", "records:\n  - ingredient: kale\n")},
		"reference negative":      {ReferencePath: writeFile(t, "r.yaml", "records:\n  - ingredient: kale\n    yield: -3\n")},
		"threshold negative":      {ReferencePath: writeFile(t, "r.yaml", "thresholds:\n  min_score: -1\nrecords:\n  - ingredient: kale\n    yield: 80\n")},
		"threshold undefined":     {ReferencePath: writeFile(t, "r.yaml", "thresholds:\n  prep_mismatch_factor: .nan\nrecords:\n  - ingredient: kale\n    yield: 80\n")},
		"rule without percent":    {RulesPath: writeFile(t, "rules.yaml", "rules:\n  - id: x\n    category: root\n")},
		"rule without field":      {RulesPath: writeFile(t, "rules.yaml", "rules:\n  - id: x\n    percent: 50\n")},
		"taxonomy empty keyword":  {TaxonomyPath: writeFile(t, "t.yaml", "categories:\n  root: ['']\n")},
		"dict short line":         {DictPath: writeFile(t, "d.txt", "onion\n")},
	}
	for name, l := range cases {
		if _, err := l.Load(); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := &Loader{RulesPath: "/nonexistent/rules.yaml"}
	if _, err := l.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
