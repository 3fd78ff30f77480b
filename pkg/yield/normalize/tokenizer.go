package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/yield/pkg/yield/stoplist"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stops *stoplist.Manager
}

// NewTokenizer creates a tokenizer that drops words in the given stoplist.
// A nil stoplist disables stopword filtering.
func NewTokenizer(stops *stoplist.Manager) *Tokenizer {
	if stops == nil {
		stops = stoplist.NewManager(nil)
	}
	return &Tokenizer{stops: stops}
}

// Tokenize folds accents, lowercases, splits on anything that is not a
// letter or digit, drops stopwords and singularizes what is left.
// Empty or whitespace-only input returns nil.
func (t *Tokenizer) Tokenize(text string) []string {
	text = fold(text)

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// processToken applies length, numeric and stopword filtering, then singularizes.
func (t *Tokenizer) processToken(word string) string {
	if len(word) <= 1 {
		return ""
	}

	// Quantities typed into the item text ("2 carrots") carry no identity.
	if isNumericOnly(word) {
		return ""
	}

	if t.stops.IsStop(word) {
		return ""
	}

	word = Singularize(word)
	if t.stops.IsStop(word) {
		return ""
	}
	return word
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// fold strips combining marks so "sautéed" and "sauteed" tokenize alike.
// The transformer chain holds buffers, so one is built per call.
func fold(s string) string {
	tr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// SplitPhrase separates an ingredient phrase into its base name and
// descriptor text. Parenthesized segments become descriptors, and the base
// is cut at the first comma or dash:
//
//	"carrot (peeled, diced)" -> "carrot", "peeled, diced"
//	"chicken thigh, boneless" -> "chicken thigh", "boneless"
func SplitPhrase(item string) (base, descriptor string) {
	var b, d strings.Builder
	depth := 0
	for _, r := range item {
		switch {
		case r == '(':
			depth++
			d.WriteRune(' ')
		case r == ')' && depth > 0:
			depth--
			d.WriteRune(' ')
		case depth > 0:
			d.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	base = b.String()
	if i := strings.IndexFunc(base, isBreak); i >= 0 {
		d.WriteRune(' ')
		d.WriteString(base[i:])
		base = base[:i]
	}
	return strings.TrimSpace(base), strings.TrimSpace(d.String())
}

func isBreak(r rune) bool {
	switch r {
	case ',', '-', '–', '—':
		return true
	}
	return false
}
