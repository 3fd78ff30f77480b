package stoplist

import (
	"sort"
	"strings"
)

// Reason explains why a token is a stopword
type Reason string

const (
	ReasonGrammar   Reason = "grammar"   // articles, conjunctions, prepositions
	ReasonQuality   Reason = "quality"   // fresh, organic, premium
	ReasonSize      Reason = "size"      // large, small, jumbo
	ReasonPackaging Reason = "packaging" // bag, bunch, can
	ReasonCustom    Reason = "custom"    // loaded from configuration
)

// Term is a single stopword with its reason.
type Term struct {
	Word   string
	Reason Reason
}

// DefaultTerms is the built-in stopword list for ingredient phrases.
// Words that describe state (peeled, diced) or identity are never listed here.
var DefaultTerms = []Term{
	{"a", ReasonGrammar}, {"an", ReasonGrammar}, {"the", ReasonGrammar},
	{"and", ReasonGrammar}, {"or", ReasonGrammar}, {"of", ReasonGrammar},
	{"with", ReasonGrammar}, {"without", ReasonGrammar}, {"for", ReasonGrammar},
	{"to", ReasonGrammar}, {"in", ReasonGrammar}, {"into", ReasonGrammar},
	{"on", ReasonGrammar}, {"about", ReasonGrammar}, {"approx", ReasonGrammar},
	{"approximately", ReasonGrammar}, {"some", ReasonGrammar}, {"plus", ReasonGrammar},
	{"then", ReasonGrammar}, {"as", ReasonGrammar}, {"per", ReasonGrammar},
	{"from", ReasonGrammar}, {"at", ReasonGrammar}, {"by", ReasonGrammar},

	{"fresh", ReasonQuality}, {"freshly", ReasonQuality}, {"organic", ReasonQuality},
	{"premium", ReasonQuality}, {"quality", ReasonQuality}, {"choice", ReasonQuality},
	{"select", ReasonQuality}, {"prime", ReasonQuality}, {"local", ReasonQuality},
	{"natural", ReasonQuality}, {"best", ReasonQuality}, {"good", ReasonQuality},
	{"fancy", ReasonQuality}, {"ripe", ReasonQuality}, {"heirloom", ReasonQuality},

	{"large", ReasonSize}, {"small", ReasonSize}, {"medium", ReasonSize},
	{"big", ReasonSize}, {"jumbo", ReasonSize}, {"baby", ReasonSize},
	{"mini", ReasonSize}, {"extra", ReasonSize}, {"xl", ReasonSize},

	{"bag", ReasonPackaging}, {"bunch", ReasonPackaging}, {"can", ReasonPackaging},
	{"canned", ReasonPackaging}, {"package", ReasonPackaging}, {"pack", ReasonPackaging},
	{"box", ReasonPackaging}, {"case", ReasonPackaging},
}

// Manager holds the stopword set used while tokenizing.
type Manager struct {
	stops map[string]Reason
}

// NewManager creates a stoplist from the given terms. Words are lowercased.
func NewManager(terms []Term) *Manager {
	stops := make(map[string]Reason, len(terms))
	for _, t := range terms {
		stops[strings.ToLower(t.Word)] = t.Reason
	}
	return &Manager{stops: stops}
}

// FromWords creates a stoplist where every word carries the same reason.
func FromWords(words []string, reason Reason) *Manager {
	terms := make([]Term, len(words))
	for i, w := range words {
		terms[i] = Term{Word: w, Reason: reason}
	}
	return NewManager(terms)
}

// Default returns a manager seeded with DefaultTerms.
func Default() *Manager {
	return NewManager(DefaultTerms)
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// ReasonFor returns why a token is a stopword.
func (m *Manager) ReasonFor(token string) (Reason, bool) {
	r, ok := m.stops[token]
	return r, ok
}

// Add adds a token to the stoplist with a reason
func (m *Manager) Add(token string, reason Reason) {
	m.stops[strings.ToLower(token)] = reason
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, strings.ToLower(token))
}

// All returns all stopwords in sorted order.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Len reports the number of stopwords.
func (m *Manager) Len() int { return len(m.stops) }
