package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Record(ctx context.Context, r Record) error {
	in := r.Input
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs
		(run_id, time, symbol, bankroll, conviction, gravity, friction, entry_price, exit_price, tolerance,
		 allocation_pct, position_size, shares, price_change_pct, potential_pl, squeeze_score, expected_alpha,
		 warnings, top_severity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time, r.Symbol,
		in.ActiveBankroll, in.ConvictionLevel, in.InstitutionalGravity, in.ExitFriction,
		in.EntryPrice, in.ExitPrice, string(in.RiskTolerance),
		r.AllocationPercent, r.PositionSize, r.Shares, r.PriceChangePercent, r.PotentialPL,
		r.SqueezeScore, r.ExpectedAlpha, r.Warnings, string(r.TopSeverity),
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.ID, err)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
