package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(ws []Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

func assess(t *testing.T, p Policy, conviction int, tol Tolerance) []Warning {
	t.Helper()

	alloc := p.AllocationPercent(conviction)
	stops, err := p.StopLossLadder(tol, 100, PositionSize(100000, alloc))
	require.NoError(t, err)
	return p.Assess(alloc, tol, stops)
}

func TestAssess(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name       string
		conviction int
		tol        Tolerance
		want       []string
	}{
		{"calm", 3, Balanced, []string{CodeAllClear}},
		{"over threshold balanced", 8, Balanced, []string{CodeAllocationThreshold}},
		{"wide stop only", 2, Aggressive, []string{CodeWideStop}},
		{"speculative low allocation", 4, Speculative, []string{CodeWideStop}},
		{"speculative over extreme", 7, Speculative, []string{CodeAllocationThreshold, CodeWideStop, CodeExtremeRisk}},
		{"speculative between thresholds", 6, Speculative, []string{CodeAllocationThreshold, CodeWideStop}},
		{"max defensive", 10, Defensive, []string{CodeAllocationThreshold}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, codes(assess(t, p, tt.conviction, tt.tol)))
		})
	}
}

func TestAssess_AllClearIsExclusive(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	ws := p.Assess(5, Defensive, []StopLossLevel{{DropPercent: 3}, {DropPercent: 5}, {DropPercent: 7}})
	require.Len(t, ws, 1)
	assert.Equal(t, SeverityInfo, ws[0].Severity)
	assert.Equal(t, "All systems green", ws[0].Message)
}

func TestAssess_Severities(t *testing.T) {
	t.Parallel()

	ws := assess(t, DefaultPolicy(), 10, Speculative)
	require.Len(t, ws, 3)
	assert.Equal(t, SeverityWarning, ws[0].Severity)
	assert.Equal(t, "Allocation exceeds institutional threshold", ws[0].Message)
	assert.Equal(t, SeverityWarning, ws[1].Severity)
	assert.Equal(t, "Wide stop-loss reduces recovery probability", ws[1].Message)
	assert.Equal(t, SeverityDanger, ws[2].Severity)
	assert.Equal(t, "Extreme risk configuration detected", ws[2].Message)
}

func TestAssess_StopExactlyAtThresholdDoesNotWarn(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	ws := p.Assess(5, Balanced, []StopLossLevel{{DropPercent: 5}, {DropPercent: 10}, {DropPercent: 15}})
	assert.Equal(t, []string{CodeAllClear}, codes(ws))
}
