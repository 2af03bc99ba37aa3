package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var csvHeader = []string{"symbol", "name", "sector", "price", "target", "market_cap_b", "gravity", "friction"}

// LoadCSV reads candidates from r. The first row must be the header.
func LoadCSV(r io.Reader) ([]Candidate, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(csvHeader)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range head {
		if strings.ToLower(strings.TrimSpace(h)) != csvHeader[i] {
			return nil, fmt.Errorf("header column %d: want %q, got %q", i+1, csvHeader[i], h)
		}
	}

	var out []Candidate
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		c, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseRow(rec []string) (Candidate, error) {
	c := Candidate{
		Symbol: normSymbol(rec[0]),
		Name:   strings.TrimSpace(rec[1]),
		Sector: strings.TrimSpace(rec[2]),
	}
	if c.Symbol == "" {
		return Candidate{}, fmt.Errorf("symbol is required")
	}

	nums := []struct {
		col string
		dst *float64
		min float64
		max float64
	}{
		{"price", &c.Price, 0, 0},
		{"target", &c.TargetPrice, 0, 0},
		{"market_cap_b", &c.MarketCapB, 0, 0},
		{"gravity", &c.InstitutionalGravity, 0, 100},
		{"friction", &c.ExitFriction, 0, 100},
	}
	for i, n := range nums {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[3+i]), 64)
		if err != nil {
			return Candidate{}, fmt.Errorf("%s: %w", n.col, err)
		}
		if v < n.min || (n.max > 0 && v > n.max) {
			return Candidate{}, fmt.Errorf("%s %v out of range", n.col, v)
		}
		*n.dst = v
	}
	if c.Price <= 0 || c.TargetPrice <= 0 {
		return Candidate{}, fmt.Errorf("%s: prices must be positive", c.Symbol)
	}
	return c, nil
}

// NewCSVSource loads a candidate file into a Static source.
func NewCSVSource(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candidates: %w", err)
	}
	defer f.Close()

	cands, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewStatic(cands...), nil
}

// WriteCSV writes cands in the format LoadCSV reads.
func WriteCSV(w io.Writer, cands []Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range cands {
		if err := cw.Write([]string{
			c.Symbol,
			c.Name,
			c.Sector,
			f(c.Price),
			f(c.TargetPrice),
			f(c.MarketCapB),
			f(c.InstitutionalGravity),
			f(c.ExitFriction),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
