package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopLossLadder_Tiers(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		tol   Tolerance
		drops []float64
	}{
		{Defensive, []float64{3, 5, 7}},
		{Balanced, []float64{5, 10, 15}},
		{Aggressive, []float64{10, 15, 20}},
		{Speculative, []float64{15, 25, 35}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.tol), func(t *testing.T) {
			t.Parallel()

			levels, err := p.StopLossLadder(tt.tol, 200, 10000)
			require.NoError(t, err)
			require.Len(t, levels, 3)

			for i, l := range levels {
				assert.Equal(t, tt.drops[i], l.DropPercent)
				assert.InDelta(t, 200*(1-tt.drops[i]/100), l.Price, 1e-9)
				assert.InDelta(t, -10000*tt.drops[i]/100, l.Loss, 1e-9)
			}
			assert.Equal(t, StopModerate, levels[0].Severity)
			assert.Equal(t, StopHigh, levels[1].Severity)
			assert.Equal(t, StopCritical, levels[2].Severity)
		})
	}
}

func TestStopLossLadder_ScalesLinearly(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	base, err := p.StopLossLadder(Balanced, 100, 5000)
	require.NoError(t, err)
	doubled, err := p.StopLossLadder(Balanced, 200, 10000)
	require.NoError(t, err)

	for i := range base {
		assert.InDelta(t, 2*base[i].Price, doubled[i].Price, 1e-9)
		assert.InDelta(t, 2*base[i].Loss, doubled[i].Loss, 1e-9)
	}
}

func TestStopLossLadder_Errors(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	_, err := p.StopLossLadder(Balanced, 0, 1000)
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	_, err = p.StopLossLadder(Tolerance("yolo"), 100, 1000)
	assert.Error(t, err)
}

func TestUpsideLadder(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	levels, err := p.UpsideLadder(100, 120, 5000)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	target := levels[0]
	assert.Equal(t, TargetLabel, target.Label)
	assert.InDelta(t, 120, target.Price, 1e-9)
	assert.InDelta(t, 20, target.Percent, 1e-9)
	assert.InDelta(t, 1000, target.Gain, 1e-9)

	stretch := levels[1]
	assert.Equal(t, StretchLabel, stretch.Label)
	assert.InDelta(t, 30, stretch.Percent, 1e-9)
	assert.InDelta(t, 130, stretch.Price, 1e-9)
	assert.InDelta(t, 1500, stretch.Gain, 1e-9)
}

func TestUpsideLadder_LosingExit(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	levels, err := p.UpsideLadder(100, 90, 1000)
	require.NoError(t, err)

	assert.InDelta(t, -10, levels[0].Percent, 1e-9)
	assert.InDelta(t, -100, levels[0].Gain, 1e-9)
	assert.InDelta(t, -15, levels[1].Percent, 1e-9)
	assert.InDelta(t, 85, levels[1].Price, 1e-9)
}

func TestWidestDrop(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, WidestDrop(nil))
	assert.Equal(t, 35.0, WidestDrop([]StopLossLevel{{DropPercent: 15}, {DropPercent: 35}, {DropPercent: 25}}))
}
