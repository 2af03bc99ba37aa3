package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/indexpro/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scenario API over HTTP",
	Long: `Start the JSON API used by dashboard clients.

Endpoints:
  POST   /api/scenario
  GET    /api/candidates
  GET    /api/candidates/{symbol}
  POST   /api/candidates/{symbol}/scenario
  GET    /api/prefs
  PUT    /api/prefs
  DELETE /api/prefs
  GET    /api/runs

Example:
  indexpro serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	calc, err := calculator()
	if err != nil {
		return err
	}
	src, err := openCandidates("")
	if err != nil {
		return err
	}
	svc, closePrefs, err := openPrefs()
	if err != nil {
		return err
	}
	defer closePrefs()

	srv := &api.Server{
		Calc:       calc,
		Candidates: src,
		Prefs:      svc,
		Log:        log,
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		srv.Journal = j
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, addr)
}
