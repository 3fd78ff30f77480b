package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/yield/pkg/yield/internalerr"
)

// Category tags.
const (
	Vegetable  = "vegetable"
	Fruit      = "fruit"
	StoneFruit = "stone-fruit"
	Root       = "root"
	Bulb       = "bulb"
	Leaf       = "leaf"
	Herb       = "herb"
	Protein    = "protein"
	Poultry    = "poultry"
	Seafood    = "seafood"
	Pantry     = "pantry"
	Dairy      = "dairy"
)

var produce = map[string]bool{
	Vegetable: true, Fruit: true, StoneFruit: true, Root: true, Bulb: true, Leaf: true, Herb: true,
}

var protein = map[string]bool{
	Protein: true, Poultry: true, Seafood: true,
}

// IsProduce reports whether a category is a fruit or vegetable family.
func IsProduce(category string) bool { return produce[category] }

// IsProtein reports whether a category is a meat, poultry or seafood family.
func IsProtein(category string) bool { return protein[category] }

// Entry tags one canonical ingredient token with its categories.
type Entry struct {
	Token      string
	Categories []string
}

// Table maps canonical ingredient tokens to category tags. It is built once
// and never mutated, so it is safe for concurrent reads.
type Table struct {
	byToken map[string][]string
}

// NewTable builds a table from entries. Tokens appearing more than once have
// their categories merged.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byToken: make(map[string][]string, len(entries))}
	for i, e := range entries {
		token := strings.ToLower(strings.TrimSpace(e.Token))
		if token == "" {
			return nil, fmt.Errorf("%w: taxonomy entry %d has empty token", internalerr.ErrInvalidConfig, i)
		}
		if len(e.Categories) == 0 {
			return nil, fmt.Errorf("%w: taxonomy entry %d (%s) has no categories", internalerr.ErrInvalidConfig, i, token)
		}
		cats := t.byToken[token]
		for _, c := range e.Categories {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				return nil, fmt.Errorf("%w: taxonomy entry %d (%s) has empty category", internalerr.ErrInvalidConfig, i, token)
			}
			if !contains(cats, c) {
				cats = append(cats, c)
			}
		}
		sort.Strings(cats)
		t.byToken[token] = cats
	}
	return t, nil
}

// FromGroups builds a table from category → keywords groups, the layout used
// by taxonomy YAML files.
func FromGroups(groups map[string][]string) (*Table, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []Entry
	for _, name := range names {
		for _, kw := range groups[name] {
			entries = append(entries, Entry{Token: kw, Categories: []string{name}})
		}
	}
	return NewTable(entries)
}

// MustNew is NewTable for compiled-in data.
func MustNew(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the built-in table.
func Default() *Table {
	return MustNew(DefaultEntries)
}

// Categorize unions the categories of every recognized token. Unknown tokens
// contribute nothing. The result is sorted.
func (t *Table) Categorize(tokens []string) []string {
	cats := make(map[string]struct{})
	for _, tok := range tokens {
		for _, c := range t.byToken[strings.ToLower(tok)] {
			cats[c] = struct{}{}
		}
	}

	result := make([]string, 0, len(cats))
	for c := range cats {
		result = append(result, c)
	}
	sort.Strings(result)
	return result
}

// CategoriesFor returns the categories of a single token.
func (t *Table) CategoriesFor(token string) []string {
	cats := t.byToken[strings.ToLower(token)]
	out := make([]string, len(cats))
	copy(out, cats)
	return out
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int { return len(t.byToken) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
