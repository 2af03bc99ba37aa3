package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationPercent(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name       string
		conviction int
		want       float64
	}{
		{"min", 1, 1},
		{"five", 5, 1 + (4.0/9.0)*19},
		{"eight", 8, 1 + (7.0/9.0)*19},
		{"max", 10, 20},
		{"clamped low", 0, 1},
		{"clamped high", 42, 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, p.AllocationPercent(tt.conviction), 1e-12)
		})
	}
}

func TestAllocationPercent_Monotonic(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	prev := p.AllocationPercent(MinConviction)
	for c := MinConviction + 1; c <= MaxConviction; c++ {
		cur := p.AllocationPercent(c)
		assert.Greater(t, cur, prev, "conviction %d", c)
		prev = cur
	}
}

func TestSizingReferenceScenario(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	alloc := p.AllocationPercent(5)
	assert.InDelta(t, 9.4444, alloc, 1e-4)

	pos := PositionSize(250000, alloc)
	assert.InDelta(t, 23611.11, pos, 0.01)

	shares, err := Shares(pos, 342.18)
	require.NoError(t, err)
	assert.Equal(t, 69, shares)

	pct, err := PriceChangePercent(342.18, 425.00)
	require.NoError(t, err)
	assert.InDelta(t, 24.2036, pct, 1e-4)

	assert.InDelta(t, 5714.7, PotentialPL(pos, pct), 0.1)
}

func TestPriceFormulas_RejectNonPositiveEntry(t *testing.T) {
	t.Parallel()

	_, err := Shares(1000, 0)
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	_, err = PriceChangePercent(0, 10)
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	_, err = PriceChangePercent(-1, 10)
	assert.ErrorIs(t, err, ErrNonPositivePrice)
}

func TestShares_ZeroBankroll(t *testing.T) {
	t.Parallel()

	n, err := Shares(0, 342.18)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestShares_Overflow(t *testing.T) {
	t.Parallel()

	for _, pos := range []float64{2e19, math.MaxFloat64, math.Inf(1), math.NaN()} {
		n, err := Shares(pos, 1)
		assert.ErrorIs(t, err, ErrShareOverflow, "position %v", pos)
		assert.Equal(t, 0, n)
	}

	// Large but within int range.
	n, err := Shares(1e18, 1)
	require.NoError(t, err)
	assert.Equal(t, int(1e18), n)
}

func TestSqueezeScore(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name     string
		gravity  float64
		friction float64
		want     int
	}{
		{"reference", 65, 45, 57},
		{"zero", 0, 0, 0},
		{"full", 100, 100, 100},
		{"gravity heavy", 80, 30, 60},
		{"rounds up", 71, 52, 63}, // 42.6 + 20.8
		{"rounds down", 33, 21, 28}, // 19.8 + 8.4
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.SqueezeScore(tt.gravity, tt.friction))
		})
	}
}

func TestExpectedAlpha(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	assert.InDelta(t, 8.5+57.0/20+5*0.8, p.ExpectedAlpha(57, 5), 1e-12)

	for c := MinConviction; c < MaxConviction; c++ {
		assert.LessOrEqual(t, p.ExpectedAlpha(57, c), p.ExpectedAlpha(57, c+1))
	}
	for s := 0; s < 100; s++ {
		assert.LessOrEqual(t, p.ExpectedAlpha(s, 5), p.ExpectedAlpha(s+1, 5))
	}
}
