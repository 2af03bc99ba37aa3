package cmd

import (
	"fmt"

	"github.com/rustyeddy/indexpro/journal"
	"github.com/rustyeddy/indexpro/market"
	"github.com/rustyeddy/indexpro/prefs"
	"github.com/rustyeddy/indexpro/scenario"
)

func openPrefs() (*prefs.Service, func() error, error) {
	if cfg.Storage.Type == "memory" {
		st := prefs.NewMemory()
		return prefs.NewService(st), st.Close, nil
	}
	st, err := prefs.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open preferences: %w", err)
	}
	return prefs.NewService(st), st.Close, nil
}

// openJournal returns nil when journaling is disabled.
func openJournal() (*journal.SQLite, error) {
	if !cfg.Storage.Journal {
		return nil, nil
	}
	j, err := journal.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func openCandidates(path string) (market.Source, error) {
	if path == "" {
		path = cfg.Storage.CandidatesFile
	}
	if path == "" {
		return market.NewStatic(market.Samples...), nil
	}
	return market.NewCSVSource(path)
}

func calculator() (*scenario.Calculator, error) {
	return scenario.New(cfg.Policy)
}
