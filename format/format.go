// Package format renders calculator numbers for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// group inserts thousands separators into an unsigned integer string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// fixed rounds x half away from zero and returns sign, grouped integer part
// and fractional digits.
func fixed(x float64, places int32) (neg bool, intPart, frac string) {
	d := decimal.NewFromFloat(x).Round(places)
	neg = d.IsNegative()
	s := d.Abs().StringFixed(places)
	intPart, frac, _ = strings.Cut(s, ".")
	return neg, group(intPart), frac
}

// Money formats dollars with two decimals: $23,611.11, -$1,180.56.
func Money(x float64) string {
	neg, i, f := fixed(x, 2)
	s := "$" + i + "." + f
	if neg {
		return "-" + s
	}
	return s
}

// Percent formats a signed percentage with two decimals: +24.20%.
func Percent(x float64) string {
	neg, i, f := fixed(x, 2)
	s := i + "." + f + "%"
	switch {
	case neg:
		return "-" + s
	case i == "0" && strings.Trim(f, "0") == "":
		return s
	}
	return "+" + s
}

// Shares formats a share count with separators.
func Shares(n int) string {
	if n < 0 {
		return "-" + group(decimal.NewFromInt(int64(-n)).String())
	}
	return group(decimal.NewFromInt(int64(n)).String())
}

// Number formats x with the given decimals and separators, no symbol.
func Number(x float64, places int32) string {
	neg, i, f := fixed(x, places)
	s := i
	if places > 0 {
		s += "." + f
	}
	if neg {
		return "-" + s
	}
	return s
}
