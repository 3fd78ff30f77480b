package sqlite

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cognicore/yield/pkg/yield/trials"
	"github.com/cognicore/yield/pkg/yield/trials/storetest"
	"github.com/cognicore/yield/pkg/yield/units"
)

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) trials.Store {
		st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "trials.db"), nil)
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		return st
	})
}

// TestSQLitePersistsAcrossReopen checks trials survive closing the database.
func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "trials.db")

	st, err := OpenSQLite(ctx, dbPath, nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	saved, err := st.Append(ctx, trials.Trial{
		Ingredient: "salmon",
		Prep:       "filleted",
		Input:      units.Quantity{Value: 4.5, Unit: "kg"},
		Output:     units.Quantity{Value: 2.6, Unit: "kg"},
		RecordedAt: time.Date(2026, 5, 2, 14, 30, 0, 123456789, time.UTC),
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = OpenSQLite(ctx, dbPath, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	got, err := st.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.RecordedAt.Equal(saved.RecordedAt) || got.Input != saved.Input {
		t.Errorf("got %+v, want %+v", got, saved)
	}
}

func TestSQLiteLogsRemovals(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "trials.db"), logger)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	saved, err := st.Append(ctx, trials.Trial{
		Ingredient: "onion",
		Input:      units.Quantity{Value: 1, Unit: "kg"},
		Output:     units.Quantity{Value: 900, Unit: "g"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := st.Remove(ctx, saved.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !strings.Contains(buf.String(), "trial removed") || !strings.Contains(buf.String(), saved.ID) {
		t.Errorf("log output = %s", buf.String())
	}
}
