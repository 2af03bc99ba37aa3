package risk

import (
	"errors"
	"math"
)

// ErrNonPositivePrice is returned by the price formulas instead of Inf or NaN.
var ErrNonPositivePrice = errors.New("price must be positive")

// ErrShareOverflow is returned when a share count does not fit in an int.
var ErrShareOverflow = errors.New("share count out of range")

func clampConviction(c int) int {
	if c < MinConviction {
		return MinConviction
	}
	if c > MaxConviction {
		return MaxConviction
	}
	return c
}

// AllocationPercent maps a conviction level onto the allocation curve.
// Conviction outside 1..10 is clamped.
func (p Policy) AllocationPercent(conviction int) float64 {
	c := clampConviction(conviction)
	span := float64(MaxConviction - MinConviction)
	return p.MinAllocationPct + (float64(c-MinConviction)/span)*(p.MaxAllocationPct-p.MinAllocationPct)
}

// PositionSize is the dollar amount committed at the given allocation.
func PositionSize(bankroll, allocationPct float64) float64 {
	return bankroll * allocationPct / 100
}

// Shares is the whole number of shares the position buys at entry.
func Shares(positionSize, entry float64) (int, error) {
	if entry <= 0 {
		return 0, ErrNonPositivePrice
	}
	n := math.Floor(positionSize / entry)
	if math.IsNaN(n) || n >= float64(math.MaxInt) {
		return 0, ErrShareOverflow
	}
	if n < 0 {
		return 0, nil
	}
	return int(n), nil
}

// PriceChangePercent is the percent move from entry to exit.
func PriceChangePercent(entry, exit float64) (float64, error) {
	if entry <= 0 {
		return 0, ErrNonPositivePrice
	}
	return (exit - entry) / entry * 100, nil
}

// PotentialPL is the dollar P/L of the position for a percent move.
func PotentialPL(positionSize, changePct float64) float64 {
	return positionSize * changePct / 100
}

// SqueezeScore blends institutional gravity and exit friction (both 0..100).
func (p Policy) SqueezeScore(gravity, friction float64) int {
	return int(math.Round(gravity*p.GravityWeight + friction*p.FrictionWeight))
}

// ExpectedAlpha is the projected return in percent: a fixed index baseline
// plus heuristic squeeze and conviction terms.
func (p Policy) ExpectedAlpha(squeeze, conviction int) float64 {
	return p.BaselineAlpha + float64(squeeze)/p.SqueezeDivisor + float64(conviction)*p.ConvictionAlpha
}
