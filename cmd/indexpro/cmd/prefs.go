package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/format"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change remembered preferences",
	Long: `Manage the remembered active bankroll.

Subcommands:
  show      - Print the stored preferences
  remember  - Remember a bankroll for future scenarios
  forget    - Clear the remembered bankroll

Examples:
  indexpro prefs remember 250000
  indexpro prefs show
  indexpro prefs forget`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsRememberCmd = &cobra.Command{
	Use:   "remember <bankroll>",
	Short: "Remember a bankroll",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsRemember,
}

var prefsForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Clear the remembered bankroll",
	Args:  cobra.NoArgs,
	RunE:  runPrefsForget,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsRememberCmd)
	prefsCmd.AddCommand(prefsForgetCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openPrefs()
	if err != nil {
		return err
	}
	defer closeFn()

	p, err := svc.Load(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !p.Remember {
		fmt.Fprintf(w, "remember: off (scenarios use %s)\n", format.Money(cfg.Defaults.Bankroll))
		return nil
	}
	fmt.Fprintf(w, "remember: on\nbankroll: %s\n", format.Money(p.ActiveBankroll))
	return nil
}

func runPrefsRemember(cmd *cobra.Command, args []string) error {
	bankroll, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bankroll %q: %w", args[0], err)
	}

	svc, closeFn, err := openPrefs()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.SetRemember(cmd.Context(), true, bankroll); err != nil {
		return err
	}
	log.Info().Float64("bankroll", bankroll).Msg("bankroll remembered")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Remembered bankroll %s\n", format.Money(bankroll))
	return nil
}

func runPrefsForget(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openPrefs()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.SetRemember(cmd.Context(), false, 0); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Remembered bankroll cleared")
	return nil
}
