package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/config"
	"github.com/rustyeddy/indexpro/logger"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "indexpro",
	Short: "Scenario Lab for S&P index-inclusion candidates",
	Long: `IndexPro sizes positions in stocks that are candidates for S&P index
inclusion and projects their P/L, expected alpha and stop-loss ladder.

It provides tools for:
  - Running Scenario Lab calculations from flags or a candidate symbol
  - Ranking candidates by squeeze score
  - Remembering your active bankroll between sessions
  - Journaling computed scenarios
  - Serving all of the above as JSON over HTTP`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $INDEXPRO_CONFIG or built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile, ".env")
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if logFormat != "" {
		c.Log.Format = logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	log = logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	log.Debug().Str("config", cfgFile).Str("storage", cfg.Storage.Type).Msg("config loaded")
	return nil
}
