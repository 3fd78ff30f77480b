// Package storetest holds the behavior every trials.Store must share.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/trials"
	"github.com/cognicore/yield/pkg/yield/units"
)

// Run exercises a fresh store returned by open for each subtest.
func Run(t *testing.T, open func(t *testing.T) trials.Store) {
	t.Run("AppendGet", func(t *testing.T) { testAppendGet(t, open(t)) })
	t.Run("Validation", func(t *testing.T) { testValidation(t, open(t)) })
	t.Run("ListOrderAndFilter", func(t *testing.T) { testList(t, open(t)) })
	t.Run("Duplicate", func(t *testing.T) { testDuplicate(t, open(t)) })
	t.Run("Remove", func(t *testing.T) { testRemove(t, open(t)) })
	t.Run("Latest", func(t *testing.T) { testLatest(t, open(t)) })
}

func trial(ingredient, prep string, in, out float64, at time.Time) trials.Trial {
	return trials.Trial{
		Ingredient: ingredient,
		Prep:       prep,
		Input:      units.Quantity{Value: in, Unit: "g"},
		Output:     units.Quantity{Value: out, Unit: "g"},
		RecordedAt: at,
	}
}

func testAppendGet(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	in := trials.Trial{
		Ingredient: "  Carrot ",
		Prep:       "peeled",
		Input:      units.Quantity{Value: 2, Unit: "lb"},
		Output:     units.Quantity{Value: 800, Unit: "g"},
		Notes:      "batch 4",
	}
	saved, err := st.Append(ctx, in)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if saved.ID == "" || saved.RecordedAt.IsZero() {
		t.Fatalf("id and timestamp should be assigned: %+v", saved)
	}
	if saved.Ingredient != "Carrot" {
		t.Errorf("ingredient = %q", saved.Ingredient)
	}

	got, err := st.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != saved.ID || got.Ingredient != saved.Ingredient || got.Prep != "peeled" ||
		got.Input != in.Input || got.Output != in.Output || got.Notes != "batch 4" ||
		!got.RecordedAt.Equal(saved.RecordedAt) {
		t.Errorf("round trip: got %+v, want %+v", got, saved)
	}
}

func testValidation(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	bad := []trials.Trial{
		trial("", "peeled", 100, 80, time.Time{}),
		trial("carrot", "", 0, 80, time.Time{}),
		trial("carrot", "", 100, -1, time.Time{}),
		{Ingredient: "carrot", Input: units.Quantity{Value: 1, Unit: "cup"}, Output: units.Quantity{Value: 1, Unit: "each"}},
		{Ingredient: "carrot", Input: units.Quantity{Value: 1, Unit: "bushel"}, Output: units.Quantity{Value: 1, Unit: "g"}},
	}
	for i, tr := range bad {
		if _, err := st.Append(ctx, tr); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
	list, err := st.List(ctx, trials.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("rejected trials were stored: %+v", list)
	}
}

func testList(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, tr := range []trials.Trial{
		trial("Carrot", "peeled", 1000, 820, t0),
		trial("carrot ", "diced", 1000, 780, t0.Add(time.Hour)),
		trial("onion", "peeled", 1000, 900, t0.Add(2*time.Hour)),
	} {
		if _, err := st.Append(ctx, tr); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := st.List(ctx, trials.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Ingredient != "onion" || all[2].Prep != "peeled" {
		t.Fatalf("all = %+v", all)
	}

	carrots, err := st.List(ctx, trials.Filter{Ingredient: "CARROT"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(carrots) != 2 || carrots[0].Prep != "diced" {
		t.Errorf("carrots = %+v", carrots)
	}

	peeled, err := st.List(ctx, trials.Filter{Ingredient: "carrot", Prep: "Peeled"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(peeled) != 1 || !peeled[0].RecordedAt.Equal(t0) {
		t.Errorf("peeled = %+v", peeled)
	}

	limited, err := st.List(ctx, trials.Filter{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 || limited[1].Ingredient != "carrot" {
		t.Errorf("limited = %+v", limited)
	}
}

func testDuplicate(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	tr := trial("leek", "trimmed", 500, 280, time.Time{})
	tr.ID = "fixed-id"
	if _, err := st.Append(ctx, tr); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := st.Append(ctx, tr); !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func testRemove(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	saved, err := st.Append(ctx, trial("garlic", "peeled", 100, 87, time.Time{}))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := st.Remove(ctx, saved.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := st.Get(ctx, saved.ID); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Get after remove: err = %v", err)
	}
	if err := st.Remove(ctx, saved.ID); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("second Remove: err = %v", err)
	}
}

func testLatest(t *testing.T, st trials.Store) {
	ctx := context.Background()
	defer st.Close()

	if _, ok, err := trials.Latest(ctx, st, "carrot", ""); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, tr := range []trials.Trial{
		trial("carrot", "peeled", 1000, 800, t0),
		trial("carrot", "peeled", 1000, 900, t0.Add(time.Minute)),
		trial("carrot", "diced", 1000, 500, t0.Add(time.Hour)),
	} {
		if _, err := st.Append(ctx, tr); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	v, ok, err := trials.Latest(ctx, st, "carrot", "peeled")
	if err != nil || !ok || v != 90 {
		t.Errorf("latest peeled = %v, %v, %v; want 90", v, ok, err)
	}
	v, ok, err = trials.Latest(ctx, st, "Carrot", "")
	if err != nil || !ok || v != 50 {
		t.Errorf("latest any prep = %v, %v, %v; want 50", v, ok, err)
	}
}
