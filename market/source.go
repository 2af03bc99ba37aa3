package market

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/indexpro/risk"
)

var ErrNotFound = errors.New("candidate not found")

// Source is the query boundary for candidate data.
type Source interface {
	List(ctx context.Context) ([]Candidate, error)
	Get(ctx context.Context, symbol string) (Candidate, error)
}

// Static serves a fixed list.
type Static struct {
	cands []Candidate
	index map[string]int
}

func NewStatic(cands ...Candidate) *Static {
	s := &Static{
		cands: append([]Candidate(nil), cands...),
		index: make(map[string]int, len(cands)),
	}
	for i, c := range s.cands {
		s.index[normSymbol(c.Symbol)] = i
	}
	return s
}

func (s *Static) List(ctx context.Context) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Candidate(nil), s.cands...), nil
}

func (s *Static) Get(ctx context.Context, symbol string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	i, ok := s.index[normSymbol(symbol)]
	if !ok {
		return Candidate{}, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return s.cands[i], nil
}

func normSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Ranked pairs a candidate with its squeeze score.
type Ranked struct {
	Candidate
	SqueezeScore int `json:"squeezeScore"`
}

// Rank scores candidates under p and sorts by squeeze score, highest first,
// ties broken by symbol.
func Rank(cands []Candidate, p risk.Policy) []Ranked {
	out := make([]Ranked, 0, len(cands))
	for _, c := range cands {
		out = append(out, Ranked{
			Candidate:    c,
			SqueezeScore: p.SqueezeScore(c.InstitutionalGravity, c.ExitFriction),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SqueezeScore != out[j].SqueezeScore {
			return out[i].SqueezeScore > out[j].SqueezeScore
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
