package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the indexpro CLI.`,
	// Skip config loading so version works with a broken config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "indexpro version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Scenario Lab for S&P index-inclusion candidates")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
