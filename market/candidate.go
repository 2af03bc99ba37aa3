// Package market provides the candidate stocks the dashboard scores for
// S&P index inclusion.
package market

import (
	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
)

// Candidate is a stock under watch for index inclusion.
type Candidate struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Price       float64 `json:"price"`
	TargetPrice float64 `json:"targetPrice"`
	MarketCapB  float64 `json:"marketCapB"` // billions USD

	// Both 0..100
	InstitutionalGravity float64 `json:"institutionalGravity"`
	ExitFriction         float64 `json:"exitFriction"`
}

// ScenarioInput seeds a calculator input from the candidate's prices and
// scores.
func (c Candidate) ScenarioInput(bankroll float64, conviction int, tol risk.Tolerance) scenario.Input {
	return scenario.Input{
		ActiveBankroll:       bankroll,
		ConvictionLevel:      conviction,
		InstitutionalGravity: c.InstitutionalGravity,
		ExitFriction:         c.ExitFriction,
		EntryPrice:           c.Price,
		ExitPrice:            c.TargetPrice,
		RiskTolerance:        tol,
	}
}

// Samples is the demo watchlist used when no data file is configured.
var Samples = []Candidate{
	{
		Symbol: "APP", Name: "AppLovin Corp", Sector: "Technology",
		Price: 342.18, TargetPrice: 425.00, MarketCapB: 115.2,
		InstitutionalGravity: 65, ExitFriction: 45,
	},
	{
		Symbol: "HOOD", Name: "Robinhood Markets", Sector: "Financials",
		Price: 48.72, TargetPrice: 61.50, MarketCapB: 42.9,
		InstitutionalGravity: 72, ExitFriction: 58,
	},
	{
		Symbol: "MSTR", Name: "MicroStrategy", Sector: "Technology",
		Price: 312.40, TargetPrice: 398.00, MarketCapB: 78.6,
		InstitutionalGravity: 81, ExitFriction: 74,
	},
	{
		Symbol: "CVNA", Name: "Carvana Co", Sector: "Consumer Discretionary",
		Price: 251.33, TargetPrice: 290.00, MarketCapB: 52.1,
		InstitutionalGravity: 54, ExitFriction: 38,
	},
	{
		Symbol: "ARES", Name: "Ares Management", Sector: "Financials",
		Price: 171.05, TargetPrice: 194.00, MarketCapB: 53.4,
		InstitutionalGravity: 47, ExitFriction: 29,
	},
	{
		Symbol: "TTD", Name: "The Trade Desk", Sector: "Technology",
		Price: 118.64, TargetPrice: 139.00, MarketCapB: 58.3,
		InstitutionalGravity: 58, ExitFriction: 33,
	},
}
