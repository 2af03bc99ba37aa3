// Package scenario implements the Scenario Lab calculator: a pure mapping
// from a position idea to its sizing, P/L projection, stop ladder and
// warnings.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/indexpro/risk"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Input is one Scenario Lab configuration.
type Input struct {
	ActiveBankroll       float64        `json:"activeBankroll"`
	ConvictionLevel      int            `json:"convictionLevel"`
	InstitutionalGravity float64        `json:"institutionalGravity"`
	ExitFriction         float64        `json:"exitFriction"`
	EntryPrice           float64        `json:"entryPrice"`
	ExitPrice            float64        `json:"exitPrice"`
	RiskTolerance        risk.Tolerance `json:"riskTolerance"`
}

// Output carries full-precision results; rounding is left to the caller.
type Output struct {
	AllocationPercent  float64              `json:"allocationPercent"`
	PositionSize       float64              `json:"positionSize"`
	Shares             int                  `json:"shares"`
	PriceChangePercent float64              `json:"priceChangePercent"`
	PotentialPL        float64              `json:"potentialPL"`
	SqueezeScore       int                  `json:"squeezeScore"`
	ExpectedAlpha      float64              `json:"expectedAlpha"`
	StopLossLevels     []risk.StopLossLevel `json:"stopLossLevels"`
	UpsideLevels       []risk.UpsideLevel   `json:"upsideLevels"`
	Warnings           []risk.Warning       `json:"warnings"`
}

// Calculator evaluates inputs against a fixed policy. It holds no other state
// and is safe for concurrent use.
type Calculator struct {
	policy risk.Policy
}

// New returns a Calculator for p. The policy is validated up front so that
// Calculate can only fail on bad input.
func New(p risk.Policy) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}
	return &Calculator{policy: p}, nil
}

// Default returns a Calculator using risk.DefaultPolicy.
func Default() *Calculator {
	return &Calculator{policy: risk.DefaultPolicy()}
}

func (c *Calculator) Policy() risk.Policy { return c.policy }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Validate reports the first constraint the input violates.
func (in Input) Validate() error {
	switch {
	case !finite(in.ActiveBankroll) || in.ActiveBankroll < 0:
		return invalid("active bankroll must be a non-negative number, got %v", in.ActiveBankroll)
	case in.ConvictionLevel < risk.MinConviction || in.ConvictionLevel > risk.MaxConviction:
		return invalid("conviction level must be between %d and %d, got %d",
			risk.MinConviction, risk.MaxConviction, in.ConvictionLevel)
	case !finite(in.InstitutionalGravity) || in.InstitutionalGravity < 0 || in.InstitutionalGravity > 100:
		return invalid("institutional gravity must be between 0 and 100, got %v", in.InstitutionalGravity)
	case !finite(in.ExitFriction) || in.ExitFriction < 0 || in.ExitFriction > 100:
		return invalid("exit friction must be between 0 and 100, got %v", in.ExitFriction)
	case !finite(in.EntryPrice) || in.EntryPrice <= 0:
		return invalid("entry price must be positive, got %v", in.EntryPrice)
	case !finite(in.ExitPrice) || in.ExitPrice <= 0:
		return invalid("exit price must be positive, got %v", in.ExitPrice)
	case !in.RiskTolerance.Valid():
		return invalid("unknown risk tolerance %q", in.RiskTolerance)
	}
	return nil
}

// Calculate validates in and computes the full scenario. It either succeeds
// entirely or returns an error wrapping ErrInvalidInput.
func (c *Calculator) Calculate(in Input) (Output, error) {
	if err := in.Validate(); err != nil {
		return Output{}, err
	}
	p := c.policy

	var out Output
	out.AllocationPercent = p.AllocationPercent(in.ConvictionLevel)
	out.PositionSize = risk.PositionSize(in.ActiveBankroll, out.AllocationPercent)
	if !finite(out.PositionSize) {
		return Output{}, invalid("active bankroll %v is too large: position size overflows", in.ActiveBankroll)
	}

	var err error
	if out.Shares, err = risk.Shares(out.PositionSize, in.EntryPrice); err != nil {
		if errors.Is(err, risk.ErrShareOverflow) {
			return Output{}, invalid("active bankroll %v is too large for entry price %v: %v",
				in.ActiveBankroll, in.EntryPrice, err)
		}
		return Output{}, invalid("shares: %v", err)
	}
	if out.PriceChangePercent, err = risk.PriceChangePercent(in.EntryPrice, in.ExitPrice); err != nil {
		return Output{}, invalid("price change: %v", err)
	}
	out.PotentialPL = risk.PotentialPL(out.PositionSize, out.PriceChangePercent)

	out.SqueezeScore = p.SqueezeScore(in.InstitutionalGravity, in.ExitFriction)
	out.ExpectedAlpha = p.ExpectedAlpha(out.SqueezeScore, in.ConvictionLevel)

	if out.StopLossLevels, err = p.StopLossLadder(in.RiskTolerance, in.EntryPrice, out.PositionSize); err != nil {
		return Output{}, invalid("stop ladder: %v", err)
	}
	if out.UpsideLevels, err = p.UpsideLadder(in.EntryPrice, in.ExitPrice, out.PositionSize); err != nil {
		return Output{}, invalid("upside ladder: %v", err)
	}

	if field := out.nonFinite(); field != "" {
		return Output{}, invalid("inputs too large: %s is not finite", field)
	}

	out.Warnings = p.Assess(out.AllocationPercent, in.RiskTolerance, out.StopLossLevels)
	return out, nil
}

type namedValue struct {
	name string
	v    float64
}

// nonFinite names the first result that overflowed, or returns "".
func (o Output) nonFinite() string {
	vals := []namedValue{
		{"position size", o.PositionSize},
		{"price change", o.PriceChangePercent},
		{"potential P/L", o.PotentialPL},
		{"expected alpha", o.ExpectedAlpha},
	}
	for _, l := range o.StopLossLevels {
		vals = append(vals, namedValue{"stop-loss " + string(l.Severity), l.Loss})
	}
	for _, l := range o.UpsideLevels {
		vals = append(vals,
			namedValue{l.Label + " price", l.Price},
			namedValue{l.Label + " gain", l.Gain},
		)
	}
	for _, x := range vals {
		if !finite(x.v) {
			return x.name
		}
	}
	return ""
}
