// Package journal records computed scenarios so a user can revisit what they
// explored.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/rustyeddy/indexpro/id"
	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
)

var ErrNotFound = errors.New("scenario record not found")

// Record is a scenario input with its headline results.
type Record struct {
	ID     string    `json:"id"`
	Time   time.Time `json:"time"`
	Symbol string    `json:"symbol,omitempty"` // set when the input came from a candidate

	Input scenario.Input `json:"input"`

	AllocationPercent  float64       `json:"allocationPercent"`
	PositionSize       float64       `json:"positionSize"`
	Shares             int           `json:"shares"`
	PriceChangePercent float64       `json:"priceChangePercent"`
	PotentialPL        float64       `json:"potentialPL"`
	SqueezeScore       int           `json:"squeezeScore"`
	ExpectedAlpha      float64       `json:"expectedAlpha"`
	Warnings           int           `json:"warnings"` // non-info results
	TopSeverity        risk.Severity `json:"topSeverity"`
}

// NewRecord builds a record stamped at the given time.
func NewRecord(at time.Time, symbol string, in scenario.Input, out scenario.Output) Record {
	return Record{
		ID:                 id.NewAt(at),
		Time:               at.UTC(),
		Symbol:             symbol,
		Input:              in,
		AllocationPercent:  out.AllocationPercent,
		PositionSize:       out.PositionSize,
		Shares:             out.Shares,
		PriceChangePercent: out.PriceChangePercent,
		PotentialPL:        out.PotentialPL,
		SqueezeScore:       out.SqueezeScore,
		ExpectedAlpha:      out.ExpectedAlpha,
		Warnings:           countAlerts(out.Warnings),
		TopSeverity:        topSeverity(out.Warnings),
	}
}

func countAlerts(ws []risk.Warning) int {
	n := 0
	for _, w := range ws {
		if w.Severity != risk.SeverityInfo {
			n++
		}
	}
	return n
}

func topSeverity(ws []risk.Warning) risk.Severity {
	rank := map[risk.Severity]int{risk.SeverityInfo: 1, risk.SeverityWarning: 2, risk.SeverityDanger: 3}
	var top risk.Severity
	for _, w := range ws {
		if rank[w.Severity] > rank[top] {
			top = w.Severity
		}
	}
	return top
}

type Journal interface {
	Record(ctx context.Context, r Record) error
	Close() error
}
