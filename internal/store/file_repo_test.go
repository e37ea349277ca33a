package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/networth"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

func TestFileRepo_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)

	c := character.New("c1", "Alex", decimal.NewFromInt(50000), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c.Portfolio.Assets = append(c.Portfolio.Assets,
		portfolio.NewAsset("fund", "Index Fund", portfolio.AssetEquity,
			decimal.NewFromInt(10), decimal.NewFromInt(100)))
	c.Lifestyle = append(c.Lifestyle,
		lifestyle.NewItem("gym", "Gym", lifestyle.CategoryWellness,
			decimal.Zero, decimal.NewFromInt(60), lifestyle.Effects{Health: 5}, 0, c.CreatedAt))
	require.NoError(t, repo.Save(ctx, c))

	// A second repo over the same directory must read from disk, not cache.
	repo2, err := NewFileRepo(repo.dataDir)
	require.NoError(t, err)

	got, ok, err := repo2.Load(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alex", got.Name)
	assert.True(t, got.Ledger.Cash.Equal(c.Ledger.Cash))
	require.Len(t, got.Portfolio.Assets, 1)
	assert.True(t, got.Portfolio.Assets[0].MarketValue().Equal(decimal.NewFromInt(1000)))
	require.Len(t, got.Lifestyle, 1)
	assert.True(t, got.Lifestyle[0].MonthlyCost.Equal(decimal.NewFromInt(60)))
}

func TestFileRepo_LoadMissing(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)

	_, ok, err := repo.Load(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileRepo_BreakdownStaleOnCashDrift(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)

	b := networth.Breakdown{
		Cash:  decimal.NewFromInt(10000),
		Total: decimal.NewFromInt(10000),
	}
	require.NoError(t, repo.SaveBreakdown(ctx, "c1", b))

	got, ok, err := repo.LoadBreakdown(ctx, "c1", decimal.NewFromInt(10000))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Total.Equal(b.Total))

	// Live cash moved on; the cached document is stale.
	_, ok, err = repo.LoadBreakdown(ctx, "c1", decimal.NewFromInt(9000))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryRepo_BreakdownStaleOnCashDrift(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	require.NoError(t, repo.SaveBreakdown(ctx, "c1",
		networth.Breakdown{Cash: decimal.NewFromInt(500), Total: decimal.NewFromInt(500)}))

	_, ok, err := repo.LoadBreakdown(ctx, "c1", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = repo.LoadBreakdown(ctx, "c1", decimal.NewFromInt(501))
	require.NoError(t, err)
	assert.False(t, ok)
}
