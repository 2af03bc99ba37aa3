package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatOrg renders a Record as an Org-mode entry. Facts go in the PROPERTIES
// drawer; Thesis and Review are left for the user to fill in.
func FormatOrg(r Record) string {
	subject := r.Symbol
	if subject == "" {
		subject = "custom"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "** Scenario: %s (%s)\n", subject, shortID(r.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", r.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", r.Time.UTC().Format(time.RFC3339))
	if r.Symbol != "" {
		fmt.Fprintf(&b, ":SYMBOL: %s\n", r.Symbol)
	}
	fmt.Fprintf(&b, ":BANKROLL: %.2f\n", r.Input.ActiveBankroll)
	fmt.Fprintf(&b, ":CONVICTION: %d\n", r.Input.ConvictionLevel)
	fmt.Fprintf(&b, ":TOLERANCE: %s\n", r.Input.RiskTolerance)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.2f\n", r.Input.EntryPrice)
	fmt.Fprintf(&b, ":EXIT_PRICE: %.2f\n", r.Input.ExitPrice)
	fmt.Fprintf(&b, ":ALLOCATION_PCT: %.2f\n", r.AllocationPercent)
	fmt.Fprintf(&b, ":POSITION_SIZE: %.2f\n", r.PositionSize)
	fmt.Fprintf(&b, ":SHARES: %d\n", r.Shares)
	fmt.Fprintf(&b, ":POTENTIAL_PL: %.2f\n", r.PotentialPL)
	fmt.Fprintf(&b, ":SQUEEZE: %d\n", r.SqueezeScore)
	fmt.Fprintf(&b, ":EXPECTED_ALPHA: %.2f\n", r.ExpectedAlpha)
	fmt.Fprintf(&b, ":WARNINGS: %d\n", r.Warnings)
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatOrgTable renders records as a single Org table.
func FormatOrgTable(recs []Record) string {
	var b strings.Builder
	b.WriteString("| id | time | symbol | conv | tol | alloc % | position | P/L | alpha | warn |\n")
	b.WriteString("|----+------+--------+------+-----+---------+----------+-----+-------+------|\n")
	for _, r := range recs {
		sym := r.Symbol
		if sym == "" {
			sym = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %.2f | %.2f | %.2f | %.2f | %d |\n",
			shortID(r.ID),
			r.Time.UTC().Format("2006-01-02 15:04"),
			sym,
			r.Input.ConvictionLevel,
			r.Input.RiskTolerance,
			r.AllocationPercent,
			r.PositionSize,
			r.PotentialPL,
			r.ExpectedAlpha,
			r.Warnings,
		)
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 10 {
		return full
	}
	return full[:10]
}
