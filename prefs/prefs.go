package prefs

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Fixed storage keys.
const (
	KeyActiveBankroll = "indexpro.activeBankroll"
	KeyRemember       = "indexpro.rememberBankroll"
)

// Preferences is everything IndexPro persists.
type Preferences struct {
	ActiveBankroll float64 `json:"activeBankroll"`
	Remember       bool    `json:"remember"`
}

// Service reads and writes Preferences through a Store.
type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

// Load returns the stored preferences. Missing keys read as zero values.
func (s *Service) Load(ctx context.Context) (Preferences, error) {
	var p Preferences

	v, ok, err := s.store.Get(ctx, KeyRemember)
	if err != nil {
		return Preferences{}, err
	}
	if ok {
		if p.Remember, err = strconv.ParseBool(v); err != nil {
			return Preferences{}, fmt.Errorf("parse %s=%q: %w", KeyRemember, v, err)
		}
	}

	v, ok, err = s.store.Get(ctx, KeyActiveBankroll)
	if err != nil {
		return Preferences{}, err
	}
	if ok {
		if p.ActiveBankroll, err = strconv.ParseFloat(v, 64); err != nil {
			return Preferences{}, fmt.Errorf("parse %s=%q: %w", KeyActiveBankroll, v, err)
		}
	}
	return p, nil
}

// Remember stores bankroll and sets the remember flag. The flag is written
// last; if it cannot be set the bankroll is removed again.
func (s *Service) Remember(ctx context.Context, bankroll float64) error {
	if math.IsNaN(bankroll) || math.IsInf(bankroll, 0) || bankroll < 0 {
		return fmt.Errorf("bankroll must be a non-negative number, got %v", bankroll)
	}
	if err := s.store.Set(ctx, KeyActiveBankroll, strconv.FormatFloat(bankroll, 'f', -1, 64)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyRemember, strconv.FormatBool(true)); err != nil {
		if derr := s.store.Delete(ctx, KeyActiveBankroll); derr != nil {
			return fmt.Errorf("set %s: %w (rollback: %v)", KeyRemember, err, derr)
		}
		return fmt.Errorf("set %s: %w", KeyRemember, err)
	}
	return nil
}

// Forget clears both keys.
func (s *Service) Forget(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyActiveBankroll); err != nil {
		return err
	}
	return s.store.Delete(ctx, KeyRemember)
}

// SetRemember is the toggle handler: on writes bankroll, off clears.
func (s *Service) SetRemember(ctx context.Context, on bool, bankroll float64) error {
	if on {
		return s.Remember(ctx, bankroll)
	}
	return s.Forget(ctx)
}

// Bankroll returns the remembered bankroll, or fallback if nothing is remembered.
func (s *Service) Bankroll(ctx context.Context, fallback float64) (float64, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	if !p.Remember {
		return fallback, nil
	}
	return p.ActiveBankroll, nil
}
