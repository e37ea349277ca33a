// Package portfolio owns the collections of investment assets and properties
// and computes per-holding current value.
package portfolio

import "github.com/shopspring/decimal"

// Portfolio is the character's collection of holdings.
type Portfolio struct {
	Assets     []Asset    `json:"assets"`
	Properties []Property `json:"properties"`
}

// AssetByListing finds the holding for a catalog listing.
func (p *Portfolio) AssetByListing(listingID string) (int, bool) {
	for i := range p.Assets {
		if p.Assets[i].ListingID == listingID {
			return i, true
		}
	}
	return -1, false
}

// PropertyByID finds a property holding by instance identity.
func (p *Portfolio) PropertyByID(id string) (int, bool) {
	for i := range p.Properties {
		if p.Properties[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveAsset deletes the holding at index i.
func (p *Portfolio) RemoveAsset(i int) {
	p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
}

// RemoveProperty deletes the holding at index i.
func (p *Portfolio) RemoveProperty(i int) {
	p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
}

// AssetsValue sums market value across all investment holdings.
func (p *Portfolio) AssetsValue() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Assets {
		total = total.Add(p.Assets[i].MarketValue())
	}
	return total
}

// AssetsValueByCategory sums market value for one investment category.
func (p *Portfolio) AssetsValueByCategory(cat AssetCategory) decimal.Decimal {
	total := decimal.Zero
	for i := range p.Assets {
		if p.Assets[i].Category == cat {
			total = total.Add(p.Assets[i].MarketValue())
		}
	}
	return total
}

// PropertyValue sums gross current value across properties.
func (p *Portfolio) PropertyValue() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Properties {
		total = total.Add(p.Properties[i].CurrentValue)
	}
	return total
}

// PropertyDebt sums outstanding loan amounts.
func (p *Portfolio) PropertyDebt() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Properties {
		total = total.Add(p.Properties[i].LoanAmount)
	}
	return total
}

// PropertyEquity is gross value minus debt.
func (p *Portfolio) PropertyEquity() decimal.Decimal {
	return p.PropertyValue().Sub(p.PropertyDebt())
}

// MortgageTotal sums monthly mortgage payments.
func (p *Portfolio) MortgageTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Properties {
		total = total.Add(p.Properties[i].MonthlyPayment)
	}
	return total
}

// PropertyIncomeTotal sums monthly property income.
func (p *Portfolio) PropertyIncomeTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Properties {
		total = total.Add(p.Properties[i].MonthlyIncome)
	}
	return total
}

// PropertyExpensesTotal sums monthly non-mortgage property expenses.
func (p *Portfolio) PropertyExpensesTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Properties {
		total = total.Add(p.Properties[i].MonthlyExpenses)
	}
	return total
}
