package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/format"
	"github.com/rustyeddy/indexpro/journal"
	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run a Scenario Lab calculation",
	Long: `Size a position and project its outcome.

Unset flags fall back to the configured defaults. With --symbol the
candidate's price, target, gravity and friction are used unless the
matching flag is given. The bankroll falls back to the remembered
preference, then to the configured default.

Examples:
  indexpro scenario --conviction 7 --tolerance aggressive
  indexpro scenario --symbol APP --bankroll 100000 --json
  indexpro scenario --entry 48.72 --exit 61.50 --record`,
	Args: cobra.NoArgs,
	RunE: runScenario,
}

var (
	scnSymbol     string
	scnBankroll   float64
	scnConviction int
	scnGravity    float64
	scnFriction   float64
	scnEntry      float64
	scnExit       float64
	scnTolerance  string
	scnJSON       bool
	scnRecord     bool
)

func init() {
	rootCmd.AddCommand(scenarioCmd)

	f := scenarioCmd.Flags()
	f.StringVarP(&scnSymbol, "symbol", "s", "", "candidate symbol to seed prices and scores from")
	f.Float64VarP(&scnBankroll, "bankroll", "b", 0, "active bankroll in dollars")
	f.IntVarP(&scnConviction, "conviction", "k", 0, "conviction level 1-10")
	f.Float64Var(&scnGravity, "gravity", 0, "institutional gravity 0-100")
	f.Float64Var(&scnFriction, "friction", 0, "exit friction 0-100")
	f.Float64Var(&scnEntry, "entry", 0, "entry price")
	f.Float64Var(&scnExit, "exit", 0, "exit price")
	f.StringVarP(&scnTolerance, "tolerance", "t", "", "risk tolerance: defensive, balanced, aggressive, speculative")
	f.BoolVar(&scnJSON, "json", false, "print the result as JSON")
	f.BoolVar(&scnRecord, "record", false, "record the result in the scenario journal (always on when storage.journal is set)")
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	in := cfg.Defaults.Input()
	symbol := ""

	if scnSymbol != "" {
		src, err := openCandidates("")
		if err != nil {
			return err
		}
		c, err := src.Get(ctx, scnSymbol)
		if err != nil {
			return err
		}
		symbol = c.Symbol
		in.EntryPrice = c.Price
		in.ExitPrice = c.TargetPrice
		in.InstitutionalGravity = c.InstitutionalGravity
		in.ExitFriction = c.ExitFriction
	}

	if flags.Changed("bankroll") {
		in.ActiveBankroll = scnBankroll
	} else {
		svc, closeFn, err := openPrefs()
		if err != nil {
			return err
		}
		in.ActiveBankroll, err = svc.Bankroll(ctx, cfg.Defaults.Bankroll)
		_ = closeFn()
		if err != nil {
			return fmt.Errorf("read remembered bankroll: %w", err)
		}
	}
	if flags.Changed("conviction") {
		in.ConvictionLevel = scnConviction
	}
	if flags.Changed("gravity") {
		in.InstitutionalGravity = scnGravity
	}
	if flags.Changed("friction") {
		in.ExitFriction = scnFriction
	}
	if flags.Changed("entry") {
		in.EntryPrice = scnEntry
	}
	if flags.Changed("exit") {
		in.ExitPrice = scnExit
	}
	if flags.Changed("tolerance") {
		t, err := risk.ParseTolerance(scnTolerance)
		if err != nil {
			return err
		}
		in.RiskTolerance = t
	}

	calc, err := calculator()
	if err != nil {
		return err
	}
	out, err := calc.Calculate(in)
	if err != nil {
		return err
	}
	log.Debug().
		Str("symbol", symbol).
		Int("conviction", in.ConvictionLevel).
		Float64("allocation_pct", out.AllocationPercent).
		Int("warnings", len(out.Warnings)).
		Msg("scenario computed")

	if scnRecord || cfg.Storage.Journal {
		if err := recordScenario(cmd, symbol, in, out); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if scnJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printScenario(w, symbol, in, out)
	return nil
}

func recordScenario(cmd *cobra.Command, symbol string, in scenario.Input, out scenario.Output) error {
	if cfg.Storage.Type != "sqlite" {
		return fmt.Errorf("--record requires sqlite storage")
	}
	j, err := journal.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	rec := journal.NewRecord(time.Now(), symbol, in, out)
	if err := j.Record(cmd.Context(), rec); err != nil {
		return err
	}
	log.Info().Str("run_id", rec.ID).Msg("scenario recorded")
	return nil
}

func printScenario(w io.Writer, symbol string, in scenario.Input, out scenario.Output) {
	if symbol == "" {
		symbol = "custom"
	}
	fmt.Fprintf(w, "Scenario: %s (%s, conviction %d/10)\n\n", symbol, in.RiskTolerance, in.ConvictionLevel)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Bankroll\t%s\n", format.Money(in.ActiveBankroll))
	fmt.Fprintf(tw, "  Allocation\t%s%%\t%s\t%s shares\n",
		format.Number(out.AllocationPercent, 2), format.Money(out.PositionSize), format.Shares(out.Shares))
	fmt.Fprintf(tw, "  Price move\t%s\t%s -> %s\n",
		format.Percent(out.PriceChangePercent), format.Money(in.EntryPrice), format.Money(in.ExitPrice))
	fmt.Fprintf(tw, "  Potential P/L\t%s\n", format.Money(out.PotentialPL))
	fmt.Fprintf(tw, "  Squeeze score\t%d\n", out.SqueezeScore)
	fmt.Fprintf(tw, "  Expected alpha\t%s\n", format.Percent(out.ExpectedAlpha))
	tw.Flush()

	fmt.Fprintln(w, "\nStop-loss ladder")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range out.StopLossLevels {
		fmt.Fprintf(tw, "  %s\t-%s%%\t%s\t%s\n",
			l.Severity, format.Number(l.DropPercent, 0), format.Money(l.Price), format.Money(l.Loss))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nUpside")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range out.UpsideLevels {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
			l.Label, format.Percent(l.Percent), format.Money(l.Price), format.Money(l.Gain))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nChecks")
	for _, c := range out.Warnings {
		fmt.Fprintf(w, "  [%s] %s: %s\n", c.Severity, c.Message, c.Detail)
	}
}
