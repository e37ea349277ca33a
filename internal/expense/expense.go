// Package expense is the pure function layer computing recurring monthly
// obligations and progressive income tax. Nothing here mutates state or
// caches results; callers re-evaluate whenever they need fresh numbers.
package expense

import (
	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
)

// Summary is the monthly obligation breakdown.
type Summary struct {
	Housing        decimal.Decimal `json:"housing"`
	Transportation decimal.Decimal `json:"transportation"`
	Food           decimal.Decimal `json:"food"`
	Lifestyle      decimal.Decimal `json:"lifestyle"`
	Mortgage       decimal.Decimal `json:"mortgage"`
	Tax            decimal.Decimal `json:"tax"`
	External       decimal.Decimal `json:"external"`
	Total          decimal.Decimal `json:"total"`
}

// Housing is the fixed monthly housing cost for a housing category.
func Housing(bal config.Balance, h character.HousingType) decimal.Decimal {
	return ledger.FromFloat(bal.HousingCost[string(h)])
}

// Transportation is the fixed monthly cost for a vehicle category.
func Transportation(bal config.Balance, v character.VehicleType) decimal.Decimal {
	return ledger.FromFloat(bal.TransportCost[string(v)])
}

// Food is the fixed monthly food cost.
func Food(bal config.Balance) decimal.Decimal {
	return ledger.FromFloat(bal.FoodCost)
}

// MonthlyIncome is gross monthly income: salary plus property income.
func MonthlyIncome(c *character.Character) decimal.Decimal {
	income := c.Portfolio.PropertyIncomeTotal()
	if c.Job != nil {
		income = income.Add(ledger.FromFloat(c.Job.MonthlySalary()))
	}
	return income
}

// Tax computes progressive bracketed income tax over monthly income. Each
// bracket taxes the slice of income within it at its marginal rate; income
// above the top boundary is taxed at the top rate.
func Tax(bal config.Balance, income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tax := decimal.Zero
	prev := decimal.Zero
	for _, b := range bal.TaxBrackets {
		upTo := ledger.FromFloat(b.UpTo)
		if upTo.LessThanOrEqual(prev) {
			continue
		}
		top := income
		if top.GreaterThan(upTo) {
			top = upTo
		}
		portion := top.Sub(prev)
		if portion.IsPositive() {
			tax = tax.Add(portion.Mul(ledger.FromFloat(b.Rate)))
		}
		if income.LessThanOrEqual(upTo) {
			return tax.Round(2)
		}
		prev = upTo
	}
	tax = tax.Add(income.Sub(prev).Mul(ledger.FromFloat(bal.TopTaxRate)))
	return tax.Round(2)
}

// TotalMonthly computes the full monthly obligation summary for a character.
func TotalMonthly(bal config.Balance, c *character.Character) Summary {
	s := Summary{
		Housing:        Housing(bal, c.Housing),
		Transportation: Transportation(bal, c.Vehicle),
		Food:           Food(bal),
		Lifestyle:      lifestyle.MaintenanceTotal(c.Lifestyle),
		Mortgage:       c.Portfolio.MortgageTotal().Add(c.Portfolio.PropertyExpensesTotal()),
		Tax:            Tax(bal, MonthlyIncome(c)),
		External:       ledger.FromFloat(bal.ExternalObligations),
	}
	s.Total = s.Housing.
		Add(s.Transportation).
		Add(s.Food).
		Add(s.Lifestyle).
		Add(s.Mortgage).
		Add(s.Tax).
		Add(s.External)
	return s
}
