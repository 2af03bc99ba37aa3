package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded scenarios",
	Long: `Query and display recorded scenarios from the SQLite journal.

Subcommands:
  recent - List the most recent scenarios
  show   - Show one scenario as an Org-mode entry
  day    - List scenarios recorded on a specific day
  export - Copy recent scenarios to a CSV file

Examples:
  indexpro journal recent -n 5
  indexpro journal show 01J8Z3NDEKTSV4RRFFQ69G5FAV
  indexpro journal day 2026-10-15
  indexpro journal export -o runs.csv -n 500`,
}

var journalRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent scenarios",
	Args:  cobra.NoArgs,
	RunE:  runJournalRecent,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List scenarios recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy recent scenarios to a CSV file",
	Args:  cobra.NoArgs,
	RunE:  runJournalExport,
}

var (
	journalLimit       int
	journalExportPath  string
	journalExportLimit int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRecentCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalExportCmd)

	journalRecentCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "number of scenarios to list")
	journalExportCmd.Flags().StringVarP(&journalExportPath, "output", "o", "runs.csv", "CSV file to write")
	journalExportCmd.Flags().IntVarP(&journalExportLimit, "limit", "n", 1000, "number of recent scenarios to export")
}

func openJournalForQuery() (*journal.SQLite, error) {
	if cfg.Storage.Type != "sqlite" {
		return nil, fmt.Errorf("journal requires sqlite storage")
	}
	j, err := journal.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRecent(cmd *cobra.Command, args []string) error {
	j, err := openJournalForQuery()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.Recent(cmd.Context(), journalLimit)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrgTable(recs))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournalForQuery()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrg(rec))
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	start, end, err := dayBounds(time.Local, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournalForQuery()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListBetween(cmd.Context(), start, end)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatOrgTable(recs))
	return nil
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	j, err := openJournalForQuery()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.Recent(cmd.Context(), journalExportLimit)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}

	out, err := journal.NewCSV(journalExportPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", journalExportPath, err)
	}
	// Recent is newest first; the CSV reads oldest first.
	for i := len(recs) - 1; i >= 0; i-- {
		if err := out.Record(cmd.Context(), recs[i]); err != nil {
			_ = out.Close()
			return fmt.Errorf("write %s: %w", journalExportPath, err)
		}
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Info().Int("runs", len(recs)).Str("path", journalExportPath).Msg("journal exported")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d scenarios to %s\n", len(recs), journalExportPath)
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
