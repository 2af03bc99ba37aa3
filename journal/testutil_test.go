package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	return j, path
}

func sampleInput() scenario.Input {
	return scenario.Input{
		ActiveBankroll:       250000,
		ConvictionLevel:      5,
		InstitutionalGravity: 65,
		ExitFriction:         45,
		EntryPrice:           342.18,
		ExitPrice:            425.00,
		RiskTolerance:        risk.Balanced,
	}
}

func sampleRecord(t *testing.T, at time.Time, conviction int, tol risk.Tolerance) Record {
	t.Helper()

	in := sampleInput()
	in.ConvictionLevel = conviction
	in.RiskTolerance = tol

	out, err := scenario.Default().Calculate(in)
	require.NoError(t, err)
	return NewRecord(at, "APP", in, out)
}
