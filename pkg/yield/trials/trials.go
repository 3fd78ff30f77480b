package trials

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/units"
)

// Trial is one chef-measured yield: a weighed or counted input and the
// usable output left after preparation.
type Trial struct {
	ID         string
	Ingredient string
	Prep       string
	Input      units.Quantity
	Output     units.Quantity
	Notes      string
	RecordedAt time.Time
}

// Percent is the measured yield of the trial.
func (t Trial) Percent() (float64, bool) {
	return units.ComputeYield(t.Input, t.Output)
}

// Filter narrows List results. Zero values match everything; Limit <= 0
// means no limit.
type Filter struct {
	Ingredient string
	Prep       string
	Limit      int
}

// Store persists trials. List returns newest first.
type Store interface {
	Append(ctx context.Context, t Trial) (Trial, error)
	Get(ctx context.Context, id string) (Trial, error)
	List(ctx context.Context, f Filter) ([]Trial, error)
	Remove(ctx context.Context, id string) error
	Close() error
}

// Validate checks an operator-entered trial before it is accepted.
func Validate(t Trial) error {
	if Key(t.Ingredient) == "" {
		return fmt.Errorf("%w: ingredient is required", internalerr.ErrInvalidInput)
	}
	return units.CheckYieldInputs(t.Input, t.Output)
}

// Key is the comparison form of an ingredient or prep name.
func Key(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Matches reports whether t passes the ingredient and prep parts of f.
func (f Filter) Matches(t Trial) bool {
	if f.Ingredient != "" && Key(f.Ingredient) != Key(t.Ingredient) {
		return false
	}
	if f.Prep != "" && Key(f.Prep) != Key(t.Prep) {
		return false
	}
	return true
}

// IDGenerator issues monotonic ULIDs. It is safe for concurrent use.
type IDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates a generator seeded from crypto/rand.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns an id for a trial recorded at ts.
func (g *IDGenerator) New(ts time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(ts), g.entropy).String()
}

// Prepare validates t and fills in its id and timestamp when missing.
// Stores call it from Append.
func Prepare(t Trial, ids *IDGenerator, now func() time.Time) (Trial, error) {
	if err := Validate(t); err != nil {
		return Trial{}, err
	}
	t.Ingredient = strings.TrimSpace(t.Ingredient)
	t.Prep = strings.TrimSpace(t.Prep)
	if t.RecordedAt.IsZero() {
		t.RecordedAt = now()
	}
	t.RecordedAt = t.RecordedAt.UTC()
	if t.ID == "" {
		t.ID = ids.New(t.RecordedAt)
	}
	return t, nil
}

// Latest returns the measured yield of the most recent trial for an
// ingredient, optionally restricted to one preparation.
func Latest(ctx context.Context, s Store, ingredient, prep string) (float64, bool, error) {
	list, err := s.List(ctx, Filter{Ingredient: ingredient, Prep: prep, Limit: 1})
	if err != nil {
		return 0, false, err
	}
	if len(list) == 0 {
		return 0, false, nil
	}
	v, ok := list[0].Percent()
	return v, ok, nil
}
