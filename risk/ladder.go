package risk

import "fmt"

// StopSeverity labels a stop-loss rung by its position in the ladder.
type StopSeverity string

const (
	StopModerate StopSeverity = "Moderate"
	StopHigh     StopSeverity = "High"
	StopCritical StopSeverity = "Critical"
)

var stopSeverities = [StopRungs]StopSeverity{StopModerate, StopHigh, StopCritical}

// StopLossLevel is one rung of the stop-loss ladder.
type StopLossLevel struct {
	DropPercent float64      `json:"dropPercent"` // magnitude, 5 means a 5% drop
	Price       float64      `json:"price"`
	Loss        float64      `json:"loss"` // negative dollars
	Severity    StopSeverity `json:"severity"`
}

// UpsideLevel is one exit target.
type UpsideLevel struct {
	Label   string  `json:"label"`
	Price   float64 `json:"price"`
	Gain    float64 `json:"gain"`
	Percent float64 `json:"percent"`
}

const (
	TargetLabel  = "Target"
	StretchLabel = "Stretch"
)

// StopLossLadder prices the tier's drops against entry and position size.
func (p Policy) StopLossLadder(t Tolerance, entry, positionSize float64) ([]StopLossLevel, error) {
	if entry <= 0 {
		return nil, ErrNonPositivePrice
	}
	drops, err := p.Drops(t)
	if err != nil {
		return nil, err
	}
	if len(drops) > StopRungs {
		return nil, fmt.Errorf("stop ladder for %q has %d rungs, max %d", t, len(drops), StopRungs)
	}

	out := make([]StopLossLevel, 0, len(drops))
	for i, d := range drops {
		out = append(out, StopLossLevel{
			DropPercent: d,
			Price:       entry * (1 - d/100),
			Loss:        positionSize * (-d / 100),
			Severity:    stopSeverities[i],
		})
	}
	return out, nil
}

// UpsideLadder returns the Target rung at the exit price and a Stretch rung
// at StretchMultiplier times the target move.
func (p Policy) UpsideLadder(entry, exit, positionSize float64) ([]UpsideLevel, error) {
	pct, err := PriceChangePercent(entry, exit)
	if err != nil {
		return nil, err
	}
	stretch := pct * p.StretchMultiplier

	return []UpsideLevel{
		{
			Label:   TargetLabel,
			Price:   exit,
			Gain:    PotentialPL(positionSize, pct),
			Percent: pct,
		},
		{
			Label:   StretchLabel,
			Price:   entry * (1 + stretch/100),
			Gain:    PotentialPL(positionSize, stretch),
			Percent: stretch,
		},
	}, nil
}

// WidestDrop returns the largest drop magnitude in a ladder.
func WidestDrop(levels []StopLossLevel) float64 {
	var max float64
	for _, l := range levels {
		if l.DropPercent > max {
			max = l.DropPercent
		}
	}
	return max
}
