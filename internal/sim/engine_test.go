package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssage19/Aspira-sub004/internal/catalog"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/job"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/networth"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
	"github.com/ssage19/Aspira-sub004/internal/store"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Assets: []catalog.AssetListing{
			{ID: "fund", Name: "Index Fund", Category: portfolio.AssetEquity, Price: 100},
			{ID: "coin", Name: "Coin", Category: portfolio.AssetCrypto, Price: 2000},
			{ID: "bond", Name: "Bond", Category: portfolio.AssetBond, Price: 50},
		},
		Properties: []catalog.PropertyListing{
			{ID: "condo", Name: "Condo", Category: "residential",
				Price: 200000, DownPayment: 20000, MonthlyIncome: 1400, MonthlyExpenses: 250},
			{ID: "benchmark", Name: "Benchmark", Category: "residential",
				Price: 360000, DownPayment: 60000},
		},
		Lifestyle: []catalog.LifestyleListing{
			{ID: "vacation", Name: "Vacation", Category: lifestyle.CategoryVacation,
				Price: 2000, DurationDays: 10,
				Effects: lifestyle.Effects{Happiness: 10, StressReduction: 5, SocialStatus: 3}},
			{ID: "gym", Name: "Gym", Category: lifestyle.CategoryWellness,
				MonthlyCost: 60, Unique: true,
				Effects: lifestyle.Effects{Health: 5}},
			{ID: "club", Name: "Club", Category: lifestyle.CategoryHobby,
				Price: 5000, MonthlyCost: 200, Unique: true, Requires: []string{"gym"},
				Effects: lifestyle.Effects{Happiness: 5, Prestige: 8}},
			{ID: "streaming", Name: "Streaming", Category: lifestyle.CategorySubscription,
				MonthlyCost: 45, Unique: true, Excludes: []string{"cinema"}},
			{ID: "cinema", Name: "Cinema", Category: lifestyle.CategorySubscription,
				MonthlyCost: 30, Unique: true, Excludes: []string{"streaming"}},
			{ID: "yacht", Name: "Yacht", Category: lifestyle.CategoryLuxury,
				Price: 10000000, Unique: true},
			{ID: "penthouse_party", Name: "Penthouse Party", Category: lifestyle.CategoryExperience,
				Price: 500, DurationDays: 1, MinNetWorth: 1000000},
		},
	}
}

func testJob() job.Job {
	return job.Job{
		ID:               "analyst",
		Title:            "Analyst",
		AnnualSalary:     78000,
		MonthlyHappiness: 2,
		MonthlyStress:    4,
		MonthlySkillGain: 3,
		TimeCommitment:   40,
	}
}

func newTestEngine(t *testing.T) (*Engine, *store.MemoryRepo, *FakeClock, *telemetry.MemoryRecorder) {
	t.Helper()
	clock := NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	repo := store.NewMemoryRepo()
	events := telemetry.NewMemoryRecorder()
	e := New(Options{
		Characters: repo,
		Catalog:    testCatalog(),
		Balance:    config.Default(),
		Clock:      clock,
		Events:     events,
		Seed:       42,
	})
	return e, repo, clock, events
}

func TestCreateCharacter_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	e, _, _, _ := newTestEngine(t)

	c, err := e.CreateCharacter(ctx, "c1", "Alex", 50000)
	require.NoError(t, err)

	assert.True(t, c.Ledger.Cash.Equal(c.NetWorth))
	assert.Equal(t, 50.0, c.Attributes.Happiness)
	assert.Equal(t, 100.0, c.Needs.Hunger)

	snap, err := e.Snapshot(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", snap.Name)
	assert.Equal(t, 0, snap.Properties)
}

func TestSnapshot_UnknownCharacter(t *testing.T) {
	ctx := context.Background()
	e, _, _, _ := newTestEngine(t)

	_, err := e.Snapshot(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Net worth must reconcile against its components after any sequence of
// operations.
func TestNetWorth_ReconcilesAfterMixedOperations(t *testing.T) {
	ctx := context.Background()
	e, repo, clock, _ := newTestEngine(t)

	_, err := e.CreateCharacter(ctx, "c1", "Alex", 100000)
	require.NoError(t, err)

	_, err = e.BuyAsset(ctx, "c1", "fund", 100)
	require.NoError(t, err)
	_, err = e.BuyAsset(ctx, "c1", "coin", 2)
	require.NoError(t, err)
	_, err = e.BuyProperty(ctx, "c1", "condo")
	require.NoError(t, err)
	_, err = e.AcquireLifestyleItem(ctx, "c1", "gym")
	require.NoError(t, err)
	_, err = e.SellAsset(ctx, "c1", "fund", 40)
	require.NoError(t, err)

	c, ok, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)

	b := networth.Calculate(c, clock.Now(), e.Balance)
	expected := c.Ledger.Cash.
		Add(c.Portfolio.AssetsValue()).
		Add(c.Portfolio.PropertyEquity()).
		Add(b.LifestyleValue)

	assert.True(t, c.NetWorth.Equal(b.Total), "engine %s vs recomputed %s", c.NetWorth, b.Total)
	assert.True(t, b.Total.Equal(expected), "breakdown %s vs first principles %s", b.Total, expected)
}

func TestNetWorthBreakdown_CacheInvalidatedByCashDrift(t *testing.T) {
	ctx := context.Background()
	e, repo, _, _ := newTestEngine(t)

	_, err := e.CreateCharacter(ctx, "c1", "Alex", 10000)
	require.NoError(t, err)

	b1, err := e.NetWorthBreakdown(ctx, "c1")
	require.NoError(t, err)

	// Mutate cash behind the cache's back; the stale breakdown must not be
	// served.
	c, ok, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	c.Ledger.Credit(b1.Cash) // double the cash

	b2, err := e.NetWorthBreakdown(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, b2.Cash.Equal(c.Ledger.Cash))
	assert.False(t, b2.Cash.Equal(b1.Cash))
}
