package risk

import "fmt"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type Warning struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail"`
}

const (
	CodeAllocationThreshold = "ALLOCATION_OVER_THRESHOLD"
	CodeWideStop            = "WIDE_STOP_LOSS"
	CodeExtremeRisk         = "EXTREME_RISK"
	CodeAllClear            = "ALL_CLEAR"
)

// Assess runs the scenario checks in order. Every matching check is reported;
// when none match the result is a single info entry.
func (p Policy) Assess(allocationPct float64, t Tolerance, stops []StopLossLevel) []Warning {
	var out []Warning

	if allocationPct > p.AllocationWarnPct {
		out = append(out, Warning{
			Severity: SeverityWarning,
			Code:     CodeAllocationThreshold,
			Message:  "Allocation exceeds institutional threshold",
			Detail: fmt.Sprintf("allocation %.2f%% is above the %.0f%% single-name limit most funds observe",
				allocationPct, p.AllocationWarnPct),
		})
	}

	if widest := WidestDrop(stops); widest > p.WideStopPct {
		out = append(out, Warning{
			Severity: SeverityWarning,
			Code:     CodeWideStop,
			Message:  "Wide stop-loss reduces recovery probability",
			Detail: fmt.Sprintf("deepest stop at -%.0f%% needs a %.1f%% rebound to break even",
				widest, recoveryPct(widest)),
		})
	}

	if t == Speculative && allocationPct > p.ExtremeAllocationPct {
		out = append(out, Warning{
			Severity: SeverityDanger,
			Code:     CodeExtremeRisk,
			Message:  "Extreme risk configuration detected",
			Detail: fmt.Sprintf("speculative tier with %.2f%% allocation (limit %.0f%%)",
				allocationPct, p.ExtremeAllocationPct),
		})
	}

	if len(out) == 0 {
		out = append(out, Warning{
			Severity: SeverityInfo,
			Code:     CodeAllClear,
			Message:  "All systems green",
			Detail:   "position size and stop ladder are within policy limits",
		})
	}
	return out
}

// recoveryPct is the gain needed to recover a drop of d percent.
func recoveryPct(d float64) float64 {
	if d >= 100 {
		return 0
	}
	return d / (100 - d) * 100
}
