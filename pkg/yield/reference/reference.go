package reference

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/normalize"
	"github.com/cognicore/yield/pkg/yield/percent"
)

// Record is one row of the reference-yield dataset as authored.
// Yield is NaN when the source omitted it; such records are rejected.
type Record struct {
	ID         string
	Ingredient string
	Method     string
	Yield      float64
	Notes      string
}

// Entry is a Record after normalization and validation.
type Entry struct {
	ID          string
	Percent     float64
	Reason      string
	Tokens      []string
	Names       normalize.Set
	Descriptors normalize.Set
	Prep        normalize.Set
	Categories  normalize.Set
}

// Normalizer turns ingredient and method phrases into targets.
type Normalizer interface {
	Normalize(item, prep string) normalize.Target
}

// Thresholds are the matcher's scoring weights and acceptance floors. The
// defaults are empirically tuned and awaiting domain review.
type Thresholds struct {
	NameWeight         float64 // per shared base-name token
	DescriptorWeight   float64 // per shared descriptor token
	PrepWeight         float64 // per shared preparation token
	CrossWeight        float64 // per target descriptor found in the entry's name
	CategoryWeight     float64 // per shared category
	PrepMismatchFactor float64 // applied when the entry has a method the target lacks
	MethodMinScore     float64 // floor for entries that specify a method
	MinScore           float64 // floor for every entry
}

// DefaultThresholds returns the tuned scoring constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NameWeight:         8,
		DescriptorWeight:   4,
		PrepWeight:         7,
		CrossWeight:        3,
		CategoryWeight:     2,
		PrepMismatchFactor: 0.6,
		MethodMinScore:     8,
		MinScore:           5,
	}
}

// validate rejects weights and floors that are negative or not finite.
func (th Thresholds) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"name_weight", th.NameWeight},
		{"descriptor_weight", th.DescriptorWeight},
		{"prep_weight", th.PrepWeight},
		{"cross_weight", th.CrossWeight},
		{"category_weight", th.CategoryWeight},
		{"prep_mismatch_factor", th.PrepMismatchFactor},
		{"method_min_score", th.MethodMinScore},
		{"min_score", th.MinScore},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %v", f.name, f.v)
		}
	}
	return nil
}

// Index holds the validated reference entries in dataset order.
type Index struct {
	entries []Entry
	th      Thresholds
}

// NewIndex validates the thresholds and normalizes every record. A record
// with an undefined, non-finite or negative yield, no recognizable
// ingredient tokens, or a duplicate id fails the whole build.
func NewIndex(records []Record, n Normalizer, th Thresholds) (*Index, error) {
	if err := th.validate(); err != nil {
		return nil, fmt.Errorf("%w: reference thresholds: %v", internalerr.ErrInvalidConfig, err)
	}
	idx := &Index{entries: make([]Entry, 0, len(records)), th: th}
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = recordID(rec)
		}
		if err := percent.Validate(rec.Yield); err != nil {
			return nil, fmt.Errorf("%w: reference record %d (%s): %v", internalerr.ErrInvalidConfig, i, id, err)
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: reference record %d (%s) duplicates record %d: %w",
				internalerr.ErrInvalidConfig, i, id, prev, internalerr.ErrDuplicate)
		}
		seen[id] = i

		tgt := n.Normalize(rec.Ingredient, rec.Method)
		if len(tgt.NameTokens) == 0 {
			return nil, fmt.Errorf("%w: reference record %d (%s) has no ingredient tokens", internalerr.ErrInvalidConfig, i, id)
		}

		reason := rec.Notes
		if reason == "" {
			reason = defaultReason(rec)
		}

		idx.entries = append(idx.entries, Entry{
			ID:          id,
			Percent:     percent.Clamp(rec.Yield),
			Reason:      reason,
			Tokens:      tgt.NameTokens,
			Names:       tgt.Names(),
			Descriptors: tgt.Descriptors,
			Prep:        tgt.Prep,
			Categories:  tgt.Categories,
		})
	}
	return idx, nil
}

// Len returns the number of indexed entries.
func (x *Index) Len() int { return len(x.entries) }

// Entries returns a copy of the indexed entries.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Thresholds returns the scoring constants in use.
func (x *Index) Thresholds() Thresholds { return x.th }

// Match is the best-scoring reference entry for a target.
type Match struct {
	Entry Entry
	Score float64
}

// Best returns the highest-scoring entry regardless of the acceptance
// floors. Ties keep the earlier entry. ok is false when no entry shares a
// name token with the target.
func (x *Index) Best(tgt normalize.Target) (Match, bool) {
	names := tgt.Names()
	var best Match
	found := false
	for _, e := range x.entries {
		s := x.score(tgt, names, e)
		if s <= 0 {
			continue
		}
		if !found || s > best.Score {
			best = Match{Entry: e, Score: s}
			found = true
		}
	}
	return best, found
}

// Lookup returns the best entry only if it clears the acceptance floors.
func (x *Index) Lookup(tgt normalize.Target) (Match, bool) {
	m, ok := x.Best(tgt)
	if !ok {
		return Match{}, false
	}
	if !x.Accepts(m) {
		return Match{}, false
	}
	return m, true
}

// Accepts applies the acceptance floors to a candidate match.
func (x *Index) Accepts(m Match) bool {
	if m.Score < x.th.MinScore {
		return false
	}
	if len(m.Entry.Prep) > 0 && m.Score < x.th.MethodMinScore {
		return false
	}
	return true
}

// score returns 0 when the entry shares no base-name token with the target.
func (x *Index) score(tgt normalize.Target, names normalize.Set, e Entry) float64 {
	shared := e.Names.Shared(names)
	if shared == 0 {
		return 0
	}

	cross := 0
	for tok := range tgt.Descriptors {
		if e.Names.Has(tok) {
			cross++
		}
	}

	s := x.th.NameWeight*float64(shared) +
		x.th.DescriptorWeight*float64(e.Descriptors.Shared(tgt.Descriptors)) +
		x.th.PrepWeight*float64(e.Prep.Shared(tgt.Prep)) +
		x.th.CrossWeight*float64(cross) +
		x.th.CategoryWeight*float64(e.Categories.Shared(tgt.Categories))

	if len(e.Prep) > 0 && e.Prep.Shared(tgt.Prep) == 0 {
		s *= x.th.PrepMismatchFactor
	}
	return s
}

func recordID(rec Record) string {
	id := "ref:" + slug(rec.Ingredient)
	if m := slug(rec.Method); m != "" {
		id += ":" + m
	}
	return id
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func defaultReason(rec Record) string {
	if rec.Method == "" {
		return fmt.Sprintf("Reference yield for %s", rec.Ingredient)
	}
	return fmt.Sprintf("Reference yield for %s (%s)", rec.Ingredient, rec.Method)
}

// Undefined marks a record whose source yield is missing.
var Undefined = math.NaN()
