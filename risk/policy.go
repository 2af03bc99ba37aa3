package risk

import (
	"fmt"
	"sort"
	"strings"
)

// Tolerance is the user's risk-tolerance tier. It selects the stop-loss ladder.
type Tolerance string

const (
	Defensive   Tolerance = "defensive"
	Balanced    Tolerance = "balanced"
	Aggressive  Tolerance = "aggressive"
	Speculative Tolerance = "speculative"
)

// Tolerances lists the tiers from least to most risk.
var Tolerances = []Tolerance{Defensive, Balanced, Aggressive, Speculative}

func (t Tolerance) Valid() bool {
	switch t {
	case Defensive, Balanced, Aggressive, Speculative:
		return true
	}
	return false
}

func (t Tolerance) String() string { return string(t) }

// ParseTolerance accepts a tier name in any case.
func ParseTolerance(s string) (Tolerance, error) {
	t := Tolerance(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown risk tolerance %q (want defensive, balanced, aggressive or speculative)", s)
	}
	return t, nil
}

// Conviction bounds. Allocation interpolates linearly across this range.
const (
	MinConviction = 1
	MaxConviction = 10
)

// StopRungs is the number of entries in every stop-loss ladder.
const StopRungs = 3

// Policy holds the product constants behind the scenario formulas.
// They have no documented derivation and are treated as configuration.
type Policy struct {
	// Allocation curve, percent of bankroll at conviction 1 and 10
	MinAllocationPct float64 `json:"min_allocation_pct" yaml:"min_allocation_pct"` // 1
	MaxAllocationPct float64 `json:"max_allocation_pct" yaml:"max_allocation_pct"` // 20

	// Squeeze score weights
	GravityWeight  float64 `json:"gravity_weight" yaml:"gravity_weight"`   // 0.6
	FrictionWeight float64 `json:"friction_weight" yaml:"friction_weight"` // 0.4

	// Expected alpha = BaselineAlpha + squeeze/SqueezeDivisor + conviction*ConvictionAlpha
	BaselineAlpha   float64 `json:"baseline_alpha" yaml:"baseline_alpha"`     // 8.5
	SqueezeDivisor  float64 `json:"squeeze_divisor" yaml:"squeeze_divisor"`   // 20
	ConvictionAlpha float64 `json:"conviction_alpha" yaml:"conviction_alpha"` // 0.8

	StretchMultiplier float64 `json:"stretch_multiplier" yaml:"stretch_multiplier"` // 1.5

	// Warning thresholds
	AllocationWarnPct    float64 `json:"allocation_warn_pct" yaml:"allocation_warn_pct"`       // 10
	WideStopPct          float64 `json:"wide_stop_pct" yaml:"wide_stop_pct"`                   // 15
	ExtremeAllocationPct float64 `json:"extreme_allocation_pct" yaml:"extreme_allocation_pct"` // 12

	// Percentage drops per tier, ascending
	StopLadders map[Tolerance][]float64 `json:"stop_ladders" yaml:"stop_ladders"`
}

// DefaultPolicy returns the IndexPro product constants.
func DefaultPolicy() Policy {
	return Policy{
		MinAllocationPct:     1,
		MaxAllocationPct:     20,
		GravityWeight:        0.6,
		FrictionWeight:       0.4,
		BaselineAlpha:        8.5,
		SqueezeDivisor:       20,
		ConvictionAlpha:      0.8,
		StretchMultiplier:    1.5,
		AllocationWarnPct:    10,
		WideStopPct:          15,
		ExtremeAllocationPct: 12,
		StopLadders: map[Tolerance][]float64{
			Defensive:   {3, 5, 7},
			Balanced:    {5, 10, 15},
			Aggressive:  {10, 15, 20},
			Speculative: {15, 25, 35},
		},
	}
}

// Drops returns a copy of the stop-loss drops for a tier.
func (p Policy) Drops(t Tolerance) ([]float64, error) {
	d, ok := p.StopLadders[t]
	if !ok {
		return nil, fmt.Errorf("no stop ladder for tolerance %q", t)
	}
	return append([]float64(nil), d...), nil
}

// Validate checks that the policy can drive the calculator.
func (p Policy) Validate() error {
	if p.MinAllocationPct <= 0 || p.MaxAllocationPct > 100 {
		return fmt.Errorf("allocation bounds must be within (0, 100]")
	}
	if p.MinAllocationPct > p.MaxAllocationPct {
		return fmt.Errorf("min_allocation_pct %.2f exceeds max_allocation_pct %.2f",
			p.MinAllocationPct, p.MaxAllocationPct)
	}
	if p.GravityWeight < 0 || p.FrictionWeight < 0 {
		return fmt.Errorf("squeeze weights must be non-negative")
	}
	if p.SqueezeDivisor <= 0 {
		return fmt.Errorf("squeeze_divisor must be positive")
	}
	if p.ConvictionAlpha < 0 {
		return fmt.Errorf("conviction_alpha must be non-negative")
	}
	if p.StretchMultiplier <= 0 {
		return fmt.Errorf("stretch_multiplier must be positive")
	}

	for _, t := range Tolerances {
		d, ok := p.StopLadders[t]
		if !ok {
			return fmt.Errorf("stop_ladders: missing tier %q", t)
		}
		if len(d) != StopRungs {
			return fmt.Errorf("stop_ladders.%s: want %d drops, got %d", t, StopRungs, len(d))
		}
		if !sort.Float64sAreSorted(d) {
			return fmt.Errorf("stop_ladders.%s: drops must be ascending", t)
		}
		if d[0] <= 0 || d[len(d)-1] >= 100 {
			return fmt.Errorf("stop_ladders.%s: drops must be within (0, 100)", t)
		}
	}
	for t := range p.StopLadders {
		if !t.Valid() {
			return fmt.Errorf("stop_ladders: unknown tier %q", t)
		}
	}
	return nil
}
