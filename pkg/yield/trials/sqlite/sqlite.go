package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/yield/pkg/yield/internalerr"
	"github.com/cognicore/yield/pkg/yield/trials"
)

// sqliteStore implements trials.Store using SQLite
type sqliteStore struct {
	db  *sql.DB
	ids *trials.IDGenerator
	now func() time.Time
	log *slog.Logger
}

// OpenSQLite opens a SQLite trial log with WAL mode enabled and creates the
// schema if needed. A nil logger discards output.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (trials.Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("trial log opened", "path", path)
	return &sqliteStore{
		db:  db,
		ids: trials.NewIDGenerator(),
		now: time.Now,
		log: logger,
	}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS trials (
	id TEXT PRIMARY KEY,
	ingredient TEXT NOT NULL,
	ingredient_key TEXT NOT NULL,
	prep TEXT NOT NULL DEFAULT '',
	prep_key TEXT NOT NULL DEFAULT '',
	input_value REAL NOT NULL,
	input_unit TEXT NOT NULL,
	output_value REAL NOT NULL,
	output_unit TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	recorded_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trials_ingredient ON trials(ingredient_key, recorded_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

const trialColumns = `id, ingredient, prep, input_value, input_unit, output_value, output_unit, notes, recorded_at`

// Append validates and inserts a trial.
func (s *sqliteStore) Append(ctx context.Context, t trials.Trial) (trials.Trial, error) {
	t, err := trials.Prepare(t, s.ids, s.now)
	if err != nil {
		return trials.Trial{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return trials.Trial{}, err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM trials WHERE id = ?`, t.ID).Scan(&exists); err != nil {
		return trials.Trial{}, err
	}
	if exists > 0 {
		return trials.Trial{}, fmt.Errorf("trial %s: %w", t.ID, internalerr.ErrDuplicate)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trials (id, ingredient, ingredient_key, prep, prep_key, input_value, input_unit,
			output_value, output_unit, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Ingredient, trials.Key(t.Ingredient), t.Prep, trials.Key(t.Prep),
		t.Input.Value, t.Input.Unit, t.Output.Value, t.Output.Unit, t.Notes, t.RecordedAt.UnixNano())
	if err != nil {
		return trials.Trial{}, err
	}
	if err := tx.Commit(); err != nil {
		return trials.Trial{}, err
	}
	return t, nil
}

// Get returns a trial by id.
func (s *sqliteStore) Get(ctx context.Context, id string) (trials.Trial, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+trialColumns+` FROM trials WHERE id = ?`, id)
	t, err := scanTrial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return trials.Trial{}, fmt.Errorf("trial %s: %w", id, internalerr.ErrNotFound)
	}
	return t, err
}

// List returns matching trials, newest first.
func (s *sqliteStore) List(ctx context.Context, f trials.Filter) ([]trials.Trial, error) {
	var (
		where []string
		args  []any
	)
	if f.Ingredient != "" {
		where = append(where, "ingredient_key = ?")
		args = append(args, trials.Key(f.Ingredient))
	}
	if f.Prep != "" {
		where = append(where, "prep_key = ?")
		args = append(args, trials.Key(f.Prep))
	}

	query := `SELECT ` + trialColumns + ` FROM trials`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY recorded_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trials.Trial
	for rows.Next() {
		t, err := scanTrial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Remove deletes a trial by id.
func (s *sqliteStore) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trial %s: %w", id, internalerr.ErrNotFound)
	}
	s.log.Debug("trial removed", "id", id)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrial(sc scanner) (trials.Trial, error) {
	var (
		t  trials.Trial
		ns int64
	)
	err := sc.Scan(&t.ID, &t.Ingredient, &t.Prep,
		&t.Input.Value, &t.Input.Unit, &t.Output.Value, &t.Output.Unit,
		&t.Notes, &ns)
	if err != nil {
		return trials.Trial{}, err
	}
	t.RecordedAt = time.Unix(0, ns).UTC()
	return t, nil
}
