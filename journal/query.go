package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectRuns = `
	SELECT run_id, time, symbol, bankroll, conviction, gravity, friction, entry_price, exit_price, tolerance,
	       allocation_pct, position_size, shares, price_change_pct, potential_pl, squeeze_score, expected_alpha,
	       warnings, top_severity
	FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var r Record
	err := s.Scan(
		&r.ID,
		&r.Time,
		&r.Symbol,
		&r.Input.ActiveBankroll,
		&r.Input.ConvictionLevel,
		&r.Input.InstitutionalGravity,
		&r.Input.ExitFriction,
		&r.Input.EntryPrice,
		&r.Input.ExitPrice,
		&r.Input.RiskTolerance,
		&r.AllocationPercent,
		&r.PositionSize,
		&r.Shares,
		&r.PriceChangePercent,
		&r.PotentialPL,
		&r.SqueezeScore,
		&r.ExpectedAlpha,
		&r.Warnings,
		&r.TopSeverity,
	)
	return r, err
}

// Get returns a single run by ID.
func (j *SQLite) Get(ctx context.Context, runID string) (Record, error) {
	r, err := scanRecord(j.db.QueryRowContext(ctx, selectRuns+` WHERE run_id = ?`, runID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return Record{}, err
	}
	return r, nil
}

// ListBetween returns runs whose time is within [start, end), oldest first.
func (j *SQLite) ListBetween(ctx context.Context, start, end time.Time) ([]Record, error) {
	return j.list(ctx, selectRuns+`
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, run_id ASC`, start.UTC(), end.UTC())
}

// Recent returns up to n runs, newest first.
func (j *SQLite) Recent(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		return nil, nil
	}
	return j.list(ctx, selectRuns+`
		ORDER BY time DESC, run_id DESC
		LIMIT ?`, n)
}

func (j *SQLite) list(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
