package journal

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "time", "symbol", "bankroll", "conviction", "gravity", "friction", "entry_price", "exit_price",
	"tolerance", "allocation_pct", "position_size", "shares", "price_change_pct", "potential_pl",
	"squeeze_score", "expected_alpha", "warnings", "top_severity",
}

type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) Record(_ context.Context, r Record) error {
	in := r.Input
	err := j.w.Write([]string{
		r.ID,
		r.Time.UTC().Format(time.RFC3339Nano),
		r.Symbol,
		fl(in.ActiveBankroll),
		strconv.Itoa(in.ConvictionLevel),
		fl(in.InstitutionalGravity),
		fl(in.ExitFriction),
		fl(in.EntryPrice),
		fl(in.ExitPrice),
		string(in.RiskTolerance),
		fl(r.AllocationPercent),
		fl(r.PositionSize),
		strconv.Itoa(r.Shares),
		fl(r.PriceChangePercent),
		fl(r.PotentialPL),
		strconv.Itoa(r.SqueezeScore),
		fl(r.ExpectedAlpha),
		strconv.Itoa(r.Warnings),
		string(r.TopSeverity),
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

func fl(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
