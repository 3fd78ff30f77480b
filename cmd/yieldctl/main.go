package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/yield/pkg/yield"
	"github.com/cognicore/yield/pkg/yield/config"
	"github.com/cognicore/yield/pkg/yield/trials"
	"github.com/cognicore/yield/pkg/yield/trials/sqlite"
	"github.com/cognicore/yield/pkg/yield/units"
)

type app struct {
	dbPath  string
	loader  config.Loader
	verbose bool
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".yield", "trials.db")

	root := &cobra.Command{
		Use:          "yieldctl",
		Short:        "Ingredient yield estimation and unit normalization",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.dbPath, "db", defaultDB, "trial log database path")
	pf.StringVar(&a.loader.StoplistPath, "stoplist", "", "stoplist YAML (default: built-in)")
	pf.StringVar(&a.loader.DictPath, "dict", "", "phrase dictionary file (default: built-in)")
	pf.StringVar(&a.loader.TaxonomyPath, "taxonomy", "", "category taxonomy YAML (default: built-in)")
	pf.StringVar(&a.loader.ReferencePath, "reference", "", "reference yield dataset YAML (default: built-in)")
	pf.StringVar(&a.loader.RulesPath, "rules", "", "rule table YAML (default: built-in)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(a.estimateCmd())
	root.AddCommand(convertCmd())
	root.AddCommand(compatibleCmd())
	root.AddCommand(measureCmd())
	root.AddCommand(a.trialCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildEngine loads configuration and assembles the engine.
func buildEngine(l config.Loader, logger *slog.Logger) (*yield.Engine, error) {
	comp, err := l.Load()
	if err != nil {
		return nil, err
	}
	return comp.Engine(logger)
}

func (a *app) engine() (*yield.Engine, error) {
	return buildEngine(a.loader, a.logger)
}

func (a *app) openStore(ctx context.Context) (trials.Store, error) {
	if err := os.MkdirAll(filepath.Dir(a.dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return sqlite.OpenSQLite(ctx, a.dbPath, a.logger)
}

func (a *app) estimateCmd() *cobra.Command {
	var (
		prep      string
		explain   bool
		heuristic bool
	)

	cmd := &cobra.Command{
		Use:   "estimate <item...>",
		Short: "Estimate the usable yield of an ingredient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := strings.Join(args, " ")
			e, err := a.engine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if explain {
				printExplanation(out, e.Explain(item, prep))
				return nil
			}

			var m yield.Match
			if heuristic {
				m = e.EstimateHeuristicYield(item, prep)
			} else {
				m = e.ComputeBaseYield(item, prep)
			}
			fmt.Fprintf(out, "%s  %s [%s]  %s\n", formatPct(m.Percent), m.RuleID, m.Stage, m.Reason)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prep, "prep", "p", "", "preparation method")
	cmd.Flags().BoolVar(&explain, "explain", false, "show every stage's outcome")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "use the heuristic stage only")
	return cmd
}

func printExplanation(w io.Writer, ex yield.Explanation) {
	t := ex.Target
	fmt.Fprintf(w, "item:        %q prep=%q\n", ex.Item, ex.Prep)
	fmt.Fprintf(w, "names:       %s\n", strings.Join(t.NameTokens, " "))
	fmt.Fprintf(w, "descriptors: %s\n", strings.Join(t.Descriptors.Sorted(), " "))
	fmt.Fprintf(w, "prep:        %s\n", strings.Join(t.Prep.Sorted(), " "))
	fmt.Fprintf(w, "categories:  %s\n", strings.Join(t.Categories.Sorted(), " "))

	switch r := ex.Reference; {
	case !r.Found:
		fmt.Fprintln(w, "reference:   no entry shares a name")
	case r.Accepted:
		fmt.Fprintf(w, "reference:   %s score=%.2f accepted\n", r.Match.Entry.ID, r.Match.Score)
	default:
		fmt.Fprintf(w, "reference:   %s score=%.2f rejected\n", r.Match.Entry.ID, r.Match.Score)
	}
	if ex.Rule.Found {
		fmt.Fprintf(w, "rule:        %s score=%.2f\n", ex.Rule.Match.Rule.ID, ex.Rule.Match.Score)
	} else {
		fmt.Fprintln(w, "rule:        none")
	}
	fmt.Fprintf(w, "heuristic:   %s %s\n", ex.Heuristic.RuleID, formatPct(ex.Heuristic.Percent))
	fmt.Fprintf(w, "chosen:      %s %s via %s\n", ex.Chosen.RuleID, formatPct(ex.Chosen.Percent), ex.Chosen.Stage)
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <qty> <unit>",
		Short: "Convert a quantity to its base unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQty(args[0])
			if err != nil {
				return err
			}
			b, ok := yield.ConvertToBaseUnit(qty, args[1])
			if !ok {
				return fmt.Errorf("cannot convert %s %s", args[0], args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", formatNum(b.Value), b.Unit, b.Dimension)
			return nil
		},
	}
}

func compatibleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compatible <unitA> <unitB>",
		Short: "Report whether two units measure the same dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if yield.AreCompatibleUnits(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "compatible")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "incompatible")
			}
			return nil
		},
	}
}

func measureCmd() *cobra.Command {
	var base float64

	cmd := &cobra.Command{
		Use:   "measure <inQty> <inUnit> <outQty> <outUnit>",
		Short: "Compute a measured yield, optionally combined with a base yield",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output, err := parsePair(args)
			if err != nil {
				return err
			}
			if err := units.CheckYieldInputs(input, output); err != nil {
				return err
			}
			v, _ := units.ComputeYield(input, output)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "measured: %s\n", formatPct(v))
			if cmd.Flags().Changed("base") {
				res := yield.CombineYields(yield.Some(base), yield.Some(v))
				fmt.Fprintf(out, "combined: %s (%s)\n", formatPct(res.Percent.Value), res.Source)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&base, "base", 0, "base yield percent to combine with")
	return cmd
}

func (a *app) trialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Record and inspect chef-measured yield trials",
	}
	cmd.AddCommand(a.trialAddCmd())
	cmd.AddCommand(a.trialListCmd())
	cmd.AddCommand(a.trialRmCmd())
	cmd.AddCommand(a.trialYieldCmd())
	return cmd
}

func (a *app) trialAddCmd() *cobra.Command {
	var prep, notes string

	cmd := &cobra.Command{
		Use:   "add <ingredient> <inQty> <inUnit> <outQty> <outUnit>",
		Short: "Record a trial",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output, err := parsePair(args[1:])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			saved, err := st.Append(ctx, trials.Trial{
				Ingredient: args[0],
				Prep:       prep,
				Input:      input,
				Output:     output,
				Notes:      notes,
			})
			if err != nil {
				return err
			}
			v, _ := saved.Percent()
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s %s → %s\n", saved.ID, saved.Ingredient, saved.Prep, formatPct(v))
			return nil
		},
	}

	cmd.Flags().StringVarP(&prep, "prep", "p", "", "preparation method")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func (a *app) trialListCmd() *cobra.Command {
	var (
		ingredient, prep string
		limit            int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trials, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := st.List(ctx, trials.Filter{Ingredient: ingredient, Prep: prep, Limit: limit})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No trials yet. Use 'yieldctl trial add' to record one.")
				return nil
			}
			for _, t := range list {
				v, _ := t.Percent()
				fmt.Fprintf(out, "%s  %s  %-16s %-12s %s %s → %s %s  %s\n",
					t.ID, t.RecordedAt.Format("2006-01-02"), t.Ingredient, t.Prep,
					formatNum(t.Input.Value), t.Input.Unit, formatNum(t.Output.Value), t.Output.Unit, formatPct(v))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ingredient, "ingredient", "", "only this ingredient")
	cmd.Flags().StringVarP(&prep, "prep", "p", "", "only this preparation")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of trials to show")
	return cmd
}

func (a *app) trialRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a trial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func (a *app) trialYieldCmd() *cobra.Command {
	var prep string

	cmd := &cobra.Command{
		Use:   "yield <ingredient...>",
		Short: "Combine the estimated base yield with the latest trial",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredient := strings.Join(args, " ")
			e, err := a.engine()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			chef := yield.None()
			v, ok, err := trials.Latest(ctx, st, ingredient, prep)
			if err != nil {
				return err
			}
			if ok {
				chef = yield.Some(v)
			}

			base := e.ComputeBaseYield(ingredient, prep)
			res := yield.CombineYields(yield.Some(base.Percent), chef)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base:     %s (%s)\n", formatPct(base.Percent), base.RuleID)
			if chef.Valid {
				fmt.Fprintf(out, "measured: %s\n", formatPct(chef.Value))
			} else {
				fmt.Fprintln(out, "measured: none")
			}
			fmt.Fprintf(out, "yield:    %s (%s)\n", formatPct(res.Percent.Value), res.Source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prep, "prep", "p", "", "preparation method")
	return cmd
}

func parseQty(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return v, nil
}

// parsePair reads <inQty> <inUnit> <outQty> <outUnit>.
func parsePair(args []string) (units.Quantity, units.Quantity, error) {
	in, err := parseQty(args[0])
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	out, err := parseQty(args[2])
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	return units.Quantity{Value: in, Unit: args[1]}, units.Quantity{Value: out, Unit: args[3]}, nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "%"
}
