package normalize

import (
	"sort"

	"github.com/cognicore/yield/pkg/yield/stoplist"
)

// Set is an unordered collection of tokens.
type Set map[string]struct{}

// NewSet builds a set from the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tok is in the set. A nil set contains nothing.
func (s Set) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Shared counts the tokens present in both sets.
func (s Set) Shared(other Set) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if large.Has(t) {
			n++
		}
	}
	return n
}

// Sorted returns the tokens in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Target is the normalized form of one ingredient description. It is built
// once per estimation call and must not be modified after Normalize returns.
type Target struct {
	NameTokens  []string // identity tokens in phrase order, deduplicated
	Descriptors Set      // state words; includes every Prep token
	Prep        Set      // tokens of the preparation phrase
	Categories  Set
}

// Empty reports whether the target carries no tokens at all.
func (t Target) Empty() bool {
	return len(t.NameTokens) == 0 && len(t.Descriptors) == 0 && len(t.Prep) == 0
}

// Names returns the name tokens as a set.
func (t Target) Names() Set {
	return NewSet(t.NameTokens...)
}

// AllTokens is the union of name, descriptor and prep tokens.
func (t Target) AllTokens() Set {
	all := make(Set, len(t.NameTokens)+len(t.Descriptors))
	for _, tok := range t.NameTokens {
		all[tok] = struct{}{}
	}
	for tok := range t.Descriptors {
		all[tok] = struct{}{}
	}
	for tok := range t.Prep {
		all[tok] = struct{}{}
	}
	return all
}

// Categorizer assigns coarse food categories to name tokens.
type Categorizer interface {
	Categorize(tokens []string) []string
}

// DefaultStateWords are words that describe what was done to an ingredient
// rather than what it is. Found in a name, they are moved to descriptors so
// "carrot peeled" and "carrot, peeled" normalize the same way.
var DefaultStateWords = []string{
	"peel", "peeled", "shelled", "cored", "pitted", "seeded", "skinned", "scaled",
	"hulled", "stemmed", "zested", "deveined", "shucked",
	"trim", "trimmed", "fabricated", "butchered", "cleaned", "deboned", "boned",
	"boneless", "skinless", "filleted", "portioned", "frenched",
	"diced", "chopped", "minced", "sliced", "julienned", "cubed", "shredded",
	"grated", "brunoise", "chiffonade", "quartered", "halved", "crushed",
	"ground", "mashed", "pureed", "spiralized",
	"roasted", "roast", "grilled", "seared", "fried", "sauteed", "smoked",
	"baked", "broiled", "charred", "toasted", "rendered",
	"braised", "stewed", "poached", "steamed", "blanched", "boiled", "simmered",
	"cooked", "raw", "frozen", "thawed", "dried", "rinsed", "washed",
}

// Options configures a Normalizer.
type Options struct {
	Stoplist    *stoplist.Manager
	Phrases     []PhraseEntry
	StateWords  []string
	Categorizer Categorizer
}

// Normalizer orchestrates the full normalization flow:
// phrase split → tokenization → phrase recognition → state extraction → categories
type Normalizer struct {
	tokenizer   *Tokenizer
	phrases     *PhraseDict
	states      Set
	categorizer Categorizer
}

// New creates a Normalizer. Nil StateWords falls back to DefaultStateWords;
// pass an empty non-nil slice to disable state extraction. State words are
// stored both as given and as tokenized, so "florets" also matches "floret".
func New(opts Options) *Normalizer {
	tok := NewTokenizer(opts.Stoplist)
	words := opts.StateWords
	if words == nil {
		words = DefaultStateWords
	}
	states := make(Set, len(words))
	for _, w := range words {
		states[w] = struct{}{}
		for _, t := range tok.Tokenize(w) {
			states[t] = struct{}{}
		}
	}
	return &Normalizer{
		tokenizer:   tok,
		phrases:     NewPhraseDict(opts.Phrases, tok.Tokenize),
		states:      states,
		categorizer: opts.Categorizer,
	}
}

// Normalize turns an ingredient phrase and optional preparation phrase into a Target.
func (n *Normalizer) Normalize(item, prep string) Target {
	base, descText := SplitPhrase(item)

	t := Target{
		Descriptors: NewSet(n.tokenizer.Tokenize(descText)...),
		Prep:        NewSet(n.tokenizer.Tokenize(prep)...),
		Categories:  make(Set),
	}

	seen := make(Set)
	for _, tok := range n.phrases.Parse(n.tokenizer.Tokenize(base)) {
		if n.states.Has(tok) {
			t.Descriptors[tok] = struct{}{}
			continue
		}
		if seen.Has(tok) {
			continue
		}
		seen[tok] = struct{}{}
		t.NameTokens = append(t.NameTokens, tok)
	}

	for tok := range t.Prep {
		t.Descriptors[tok] = struct{}{}
	}

	if n.categorizer != nil {
		for _, c := range n.categorizer.Categorize(t.NameTokens) {
			t.Categories[c] = struct{}{}
		}
	}
	for _, tok := range t.NameTokens {
		if c, ok := n.phrases.Category(tok); ok {
			t.Categories[c] = struct{}{}
		}
	}

	return t
}
