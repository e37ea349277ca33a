// Package networth aggregates every value source into a reconciled net worth
// figure and a labelled breakdown for external consumption.
package networth

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

// Breakdown is the labelled decomposition of total net worth. Cash records
// the ledger cash at computation time; the persisted breakdown cache is
// invalidated when live cash drifts from it.
type Breakdown struct {
	Cash             decimal.Decimal `json:"cash"`
	Equities         decimal.Decimal `json:"equities"`
	Crypto           decimal.Decimal `json:"crypto"`
	Bonds            decimal.Decimal `json:"bonds"`
	OtherInvestments decimal.Decimal `json:"other_investments"`
	PropertyEquity   decimal.Decimal `json:"property_equity"`
	PropertyValue    decimal.Decimal `json:"property_value"`
	PropertyDebt     decimal.Decimal `json:"property_debt"`
	LifestyleValue   decimal.Decimal `json:"lifestyle_value"`
	Total            decimal.Decimal `json:"total"`
}

// Calculate recomputes net worth from first principles:
// cash + investment market value + property equity + lifestyle residual value.
func Calculate(c *character.Character, now time.Time, bal config.Balance) Breakdown {
	b := Breakdown{
		Cash:             c.Ledger.Cash,
		Equities:         c.Portfolio.AssetsValueByCategory(portfolio.AssetEquity),
		Crypto:           c.Portfolio.AssetsValueByCategory(portfolio.AssetCrypto),
		Bonds:            c.Portfolio.AssetsValueByCategory(portfolio.AssetBond),
		OtherInvestments: c.Portfolio.AssetsValueByCategory(portfolio.AssetOther),
		PropertyValue:    c.Portfolio.PropertyValue(),
		PropertyDebt:     c.Portfolio.PropertyDebt(),
		LifestyleValue: lifestyle.ResidualTotal(
			c.Lifestyle, now,
			bal.DepreciationPerMonth, bal.DepreciationCap, bal.SubscriptionValueMonths,
		),
	}
	b.PropertyEquity = b.PropertyValue.Sub(b.PropertyDebt)
	b.Total = b.Cash.
		Add(b.Equities).
		Add(b.Crypto).
		Add(b.Bonds).
		Add(b.OtherInvestments).
		Add(b.PropertyEquity).
		Add(b.LifestyleValue)
	return b
}
