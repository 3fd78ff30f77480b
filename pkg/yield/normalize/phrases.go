package normalize

import "strings"

// PhraseEntry maps one or more spellings of an ingredient onto a single
// canonical name token. Category, when set, is attached to any target
// whose name contains the canonical token.
type PhraseEntry struct {
	Canonical string
	Variants  []string
	Category  string
}

// DefaultPhrases collapses multi-word names and regional synonyms.
var DefaultPhrases = []PhraseEntry{
	{Canonical: "scallion", Variants: []string{"green onion", "spring onion"}, Category: "bulb"},
	{Canonical: "sweetpotato", Variants: []string{"sweet potato", "kumara"}, Category: "root"},
	{Canonical: "bellpepper", Variants: []string{"bell pepper", "capsicum", "sweet pepper"}},
	{Canonical: "peppercorn", Variants: []string{"black pepper", "white pepper", "ground pepper"}, Category: "pantry"},
	{Canonical: "zucchini", Variants: []string{"courgette"}},
	{Canonical: "eggplant", Variants: []string{"aubergine"}},
	{Canonical: "cilantro", Variants: []string{"coriander leaf", "coriander leaves"}},
	{Canonical: "arugula", Variants: []string{"rocket"}},
	{Canonical: "shrimp", Variants: []string{"prawn"}},
	{Canonical: "bokchoy", Variants: []string{"bok choy", "pak choi"}},
	{Canonical: "greenbean", Variants: []string{"green bean", "string bean", "haricots verts", "french bean"}},
	{Canonical: "brusselsprout", Variants: []string{"brussels sprout"}},
	{Canonical: "butternut", Variants: []string{"butternut squash"}, Category: "vegetable"},
	{Canonical: "cornstarch", Variants: []string{"corn starch", "cornflour"}},
	{Canonical: "bakingsoda", Variants: []string{"baking soda", "bicarbonate of soda"}, Category: "pantry"},
	{Canonical: "bakingpowder", Variants: []string{"baking powder"}, Category: "pantry"},
	{Canonical: "oliveoil", Variants: []string{"olive oil"}, Category: "pantry"},
	{Canonical: "porkbelly", Variants: []string{"pork belly"}, Category: "protein"},
}

// PhraseDict recognizes canonical ingredient names in a token stream.
type PhraseDict struct {
	dict       map[string]string // normalized phrase → canonical
	categories map[string]string // canonical → category
	maxLen     int
}

// NewPhraseDict builds a dictionary whose keys are normalized with the same
// tokenize function later applied to input text, so "Green Onions" and
// "green onion" share a key.
func NewPhraseDict(entries []PhraseEntry, tokenize func(string) []string) *PhraseDict {
	p := &PhraseDict{
		dict:       make(map[string]string),
		categories: make(map[string]string),
		maxLen:     1,
	}
	for _, e := range entries {
		canonical := canonicalToken(e.Canonical)
		if canonical == "" {
			continue
		}
		if e.Category != "" {
			p.categories[canonical] = strings.ToLower(e.Category)
		}
		p.add(canonical, []string{canonical})
		for _, v := range e.Variants {
			if toks := tokenize(v); len(toks) > 0 {
				p.add(canonical, toks)
			}
		}
	}
	return p
}

func (p *PhraseDict) add(canonical string, toks []string) {
	p.dict[strings.Join(toks, " ")] = canonical
	if len(toks) > p.maxLen {
		p.maxLen = len(toks)
	}
}

// Parse applies greedy longest-match to recognize phrases
func (p *PhraseDict) Parse(tokens []string) []string {
	if p == nil || len(tokens) == 0 {
		return tokens
	}

	result := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		matched := ""
		matchLen := 1

		maxPhrase := p.maxLen
		if remaining := len(tokens) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}
		for n := maxPhrase; n >= 1; n-- {
			if canonical, ok := p.dict[strings.Join(tokens[i:i+n], " ")]; ok {
				matched = canonical
				matchLen = n
				break
			}
		}

		if matched != "" {
			result = append(result, matched)
			i += matchLen
		} else {
			result = append(result, tokens[i])
			i++
		}
	}
	return result
}

// Category returns the category attached to a canonical token.
func (p *PhraseDict) Category(canonical string) (string, bool) {
	if p == nil {
		return "", false
	}
	c, ok := p.categories[canonical]
	return c, ok
}

// Len returns the number of recognized spellings.
func (p *PhraseDict) Len() int {
	if p == nil {
		return 0
	}
	return len(p.dict)
}

// canonicalToken squeezes a canonical name into a single token.
func canonicalToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(fold(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
