package networth

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

func TestCalculate_SumsAllSources(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bal := config.Default()

	c := character.New("c1", "Alex", decimal.NewFromInt(25000), now)
	c.Portfolio.Assets = []portfolio.Asset{
		{Category: portfolio.AssetEquity, Quantity: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(100)},
		{Category: portfolio.AssetCrypto, Quantity: decimal.NewFromInt(2), CurrentPrice: decimal.NewFromInt(2000)},
		{Category: portfolio.AssetBond, Quantity: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(50)},
	}
	c.Portfolio.Properties = []portfolio.Property{
		{CurrentValue: decimal.NewFromInt(200000), LoanAmount: decimal.NewFromInt(180000)},
	}
	c.Lifestyle = []lifestyle.Item{
		{Price: decimal.NewFromInt(10000), AcquiredAt: now}, // no depreciation yet
		{Price: decimal.NewFromInt(2000), DurationDays: 10, AcquiredAt: now},
	}

	b := Calculate(c, now, bal)

	assert.True(t, b.Cash.Equal(decimal.NewFromInt(25000)))
	assert.True(t, b.Equities.Equal(decimal.NewFromInt(10000)))
	assert.True(t, b.Crypto.Equal(decimal.NewFromInt(4000)))
	assert.True(t, b.Bonds.Equal(decimal.NewFromInt(500)))
	assert.True(t, b.OtherInvestments.IsZero())
	assert.True(t, b.PropertyEquity.Equal(decimal.NewFromInt(20000)))
	// The temporary item contributes nothing.
	assert.True(t, b.LifestyleValue.Equal(decimal.NewFromInt(10000)), "lifestyle %s", b.LifestyleValue)

	expected := decimal.NewFromInt(25000 + 10000 + 4000 + 500 + 20000 + 10000)
	assert.True(t, b.Total.Equal(expected), "total %s", b.Total)
}

func TestCalculate_NegativeEquityDragsTotal(t *testing.T) {
	now := time.Now()
	bal := config.Default()

	c := character.New("c1", "Alex", decimal.NewFromInt(1000), now)
	c.Portfolio.Properties = []portfolio.Property{
		{CurrentValue: decimal.NewFromInt(100000), LoanAmount: decimal.NewFromInt(150000)},
	}

	b := Calculate(c, now, bal)
	assert.True(t, b.PropertyEquity.Equal(decimal.NewFromInt(-50000)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(-49000)))
}
