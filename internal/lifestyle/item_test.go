package lifestyle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_DurationSetsEndDate(t *testing.T) {
	acquired := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	it := NewItem("vacation", "Vacation", CategoryVacation,
		decimal.NewFromInt(2000), decimal.Zero, Effects{Happiness: 10}, 10, acquired)
	require.NotNil(t, it.EndDate)
	assert.Equal(t, acquired.AddDate(0, 0, 10), *it.EndDate)
	assert.True(t, it.Temporary())
	assert.False(t, it.Expired(*it.EndDate))
	assert.True(t, it.Expired(it.EndDate.Add(time.Second)))

	perm := NewItem("art", "Art", CategoryLuxury,
		decimal.NewFromInt(5000), decimal.Zero, Effects{}, 0, acquired)
	assert.Nil(t, perm.EndDate)
	assert.False(t, perm.Temporary())
	assert.False(t, perm.Expired(acquired.AddDate(10, 0, 0)))
}

func TestResidualValue_Depreciation(t *testing.T) {
	acquired := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	it := Item{Price: decimal.NewFromInt(10000), AcquiredAt: acquired}

	// 5% per month, capped at 75%.
	cases := []struct {
		months int
		want   float64
	}{
		{0, 10000},
		{1, 9500},
		{6, 7000},
		{15, 2500},
		{20, 2500}, // cap reached
		{120, 2500},
	}
	for _, tc := range cases {
		now := acquired.AddDate(0, tc.months, 0)
		got := it.ResidualValue(now, 0.05, 0.75, 3)
		assert.True(t, got.Equal(decimal.NewFromFloat(tc.want)),
			"months %d: got %s want %v", tc.months, got, tc.want)
	}
}

func TestResidualValue_SubscriptionUsesMonthlyCost(t *testing.T) {
	it := Item{MonthlyCost: decimal.NewFromInt(45)}
	got := it.ResidualValue(time.Now(), 0.05, 0.75, 3)
	assert.True(t, got.Equal(decimal.NewFromInt(135)), "got %s", got)
}

func TestResidualValue_TemporaryIsZero(t *testing.T) {
	it := Item{Price: decimal.NewFromInt(2000), DurationDays: 10}
	assert.True(t, it.ResidualValue(time.Now(), 0.05, 0.75, 3).IsZero())
}

func TestTotals(t *testing.T) {
	acquired := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{Price: decimal.NewFromInt(10000), MonthlyCost: decimal.NewFromInt(100), AcquiredAt: acquired},
		{MonthlyCost: decimal.NewFromInt(45)},
		{Price: decimal.NewFromInt(2000), DurationDays: 10, AcquiredAt: acquired},
	}

	assert.True(t, MaintenanceTotal(items).Equal(decimal.NewFromInt(145)))
	got := ResidualTotal(items, acquired.AddDate(0, 1, 0), 0.05, 0.75, 3)
	assert.True(t, got.Equal(decimal.NewFromInt(9635)), "got %s", got) // 9500 + 135 + 0
}
