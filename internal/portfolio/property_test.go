package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmortizedPayment(t *testing.T) {
	// 300k over 30 years at 5.5% is the textbook case.
	p := AmortizedPayment(decimal.NewFromInt(300000), 0.055, 30)
	assert.InDelta(t, 1703.37, p.InexactFloat64(), 0.01)

	// Zero rate degrades to straight-line.
	p = AmortizedPayment(decimal.NewFromInt(36000), 0, 30)
	assert.True(t, p.Equal(decimal.NewFromInt(100)), "payment %s", p)

	assert.True(t, AmortizedPayment(decimal.Zero, 0.055, 30).IsZero())
	assert.True(t, AmortizedPayment(decimal.NewFromInt(1000), 0.055, 0).IsZero())
}

func TestNewProperty_LoanFloorsAtZero(t *testing.T) {
	acquired := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// Down payment exceeding price means no loan and no payment.
	p := NewProperty("l1", "Cabin", "residential",
		decimal.NewFromInt(50000), decimal.NewFromInt(60000), 30, 0.055, acquired)
	assert.True(t, p.LoanAmount.IsZero())
	assert.True(t, p.MonthlyPayment.IsZero())
	assert.True(t, p.Equity().Equal(p.CurrentValue))
}

func TestMonthsHeld(t *testing.T) {
	acquired := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	p := Property{AcquiredAt: acquired}

	cases := []struct {
		now  time.Time
		want int
	}{
		{acquired, 0},
		{time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), 6},
		{time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), 12},
		// A clock set before acquisition floors at zero.
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.MonthsHeld(tc.now), "now %s", tc.now)
	}
}

func TestPortfolio_Totals(t *testing.T) {
	p := Portfolio{
		Assets: []Asset{
			{ListingID: "fund", Category: AssetEquity, Quantity: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(100)},
			{ListingID: "coin", Category: AssetCrypto, Quantity: decimal.NewFromInt(2), CurrentPrice: decimal.NewFromInt(2000)},
		},
		Properties: []Property{
			{CurrentValue: decimal.NewFromInt(200000), LoanAmount: decimal.NewFromInt(180000),
				MonthlyPayment: decimal.NewFromInt(1000), MonthlyIncome: decimal.NewFromInt(1400),
				MonthlyExpenses: decimal.NewFromInt(250)},
			{CurrentValue: decimal.NewFromInt(100000), LoanAmount: decimal.NewFromInt(40000)},
		},
	}

	assert.True(t, p.AssetsValue().Equal(decimal.NewFromInt(5000)))
	assert.True(t, p.AssetsValueByCategory(AssetEquity).Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.PropertyValue().Equal(decimal.NewFromInt(300000)))
	assert.True(t, p.PropertyDebt().Equal(decimal.NewFromInt(220000)))
	assert.True(t, p.PropertyEquity().Equal(decimal.NewFromInt(80000)))
	assert.True(t, p.MortgageTotal().Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.PropertyIncomeTotal().Equal(decimal.NewFromInt(1400)))
	assert.True(t, p.PropertyExpensesTotal().Equal(decimal.NewFromInt(250)))
}
