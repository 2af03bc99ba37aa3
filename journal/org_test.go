package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/indexpro/risk"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 15, 10, 30, 45, 0, time.UTC)
	rec := sampleRecord(t, at, 5, risk.Balanced)

	result := FormatOrg(rec)

	assert.True(t, strings.HasPrefix(result, "** Scenario: APP ("+rec.ID[:10]+")\n"))
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: "+rec.ID)
	assert.Contains(t, result, ":TIME: 2026-03-15T10:30:45Z")
	assert.Contains(t, result, ":SYMBOL: APP")
	assert.Contains(t, result, ":BANKROLL: 250000.00")
	assert.Contains(t, result, ":CONVICTION: 5")
	assert.Contains(t, result, ":TOLERANCE: balanced")
	assert.Contains(t, result, ":ENTRY_PRICE: 342.18")
	assert.Contains(t, result, ":SHARES: 69")
	assert.Contains(t, result, ":SQUEEZE: 57")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "*** Thesis")
	assert.Contains(t, result, "*** Review")
}

func TestFormatOrg_CustomScenario(t *testing.T) {
	t.Parallel()

	rec := sampleRecord(t, time.Now(), 5, risk.Balanced)
	rec.Symbol = ""

	result := FormatOrg(rec)
	assert.Contains(t, result, "** Scenario: custom (")
	assert.NotContains(t, result, ":SYMBOL:")
}

func TestFormatOrgTable(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	recs := []Record{
		sampleRecord(t, at, 5, risk.Balanced),
		sampleRecord(t, at.Add(time.Minute), 9, risk.Speculative),
	}

	table := FormatOrgTable(recs)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "| 2026-03-15 10:30 | APP | 5 | balanced |")
	assert.Contains(t, lines[3], "| 9 | speculative |")
	assert.True(t, strings.HasSuffix(lines[3], "| 3 |"))
}

func TestShortID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "0123456789", shortID("0123456789ABCDEF"))
}
