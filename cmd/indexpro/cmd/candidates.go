package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/format"
	"github.com/rustyeddy/indexpro/market"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List index-inclusion candidates ranked by squeeze score",
	Long: `List candidate stocks ranked by squeeze score (institutional gravity
and exit friction blended by the configured weights).

Candidates come from --csv, storage.candidates_file, or the built-in
sample watchlist.

Examples:
  indexpro candidates
  indexpro candidates --csv ./watchlist.csv
  indexpro candidates --export ./watchlist.csv`,
	Args: cobra.NoArgs,
	RunE: runCandidates,
}

var (
	candCSV    string
	candExport string
)

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().StringVar(&candCSV, "csv", "", "read candidates from a CSV file")
	candidatesCmd.Flags().StringVar(&candExport, "export", "", "write the candidates to a CSV file instead of listing them")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	src, err := openCandidates(candCSV)
	if err != nil {
		return err
	}
	cands, err := src.List(cmd.Context())
	if err != nil {
		return err
	}

	if candExport != "" {
		f, err := os.Create(candExport)
		if err != nil {
			return fmt.Errorf("create %s: %w", candExport, err)
		}
		if err := market.WriteCSV(f, cands); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", candExport, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d candidates to %s\n", len(cands), candExport)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tSECTOR\tPRICE\tTARGET\tUPSIDE\tGRAVITY\tFRICTION\tSQUEEZE")
	for _, r := range market.Rank(cands, cfg.Policy) {
		upside := (r.TargetPrice - r.Price) / r.Price * 100
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Symbol, r.Name, r.Sector,
			format.Money(r.Price), format.Money(r.TargetPrice), format.Percent(upside),
			format.Number(r.InstitutionalGravity, 0), format.Number(r.ExitFriction, 0),
			r.SqueezeScore)
	}
	return tw.Flush()
}
