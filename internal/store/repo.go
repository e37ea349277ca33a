// Package store persists characters as JSON documents in a key-value layout:
// one document per character plus an independently keyed document caching the
// last-computed net worth breakdown. Persistence is write-through on every
// mutation with no transactional guarantee.
package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/networth"
)

// Repository handles character persistence.
type Repository interface {
	// Load returns the character document, or ok=false when none exists.
	Load(ctx context.Context, id string) (*character.Character, bool, error)
	Save(ctx context.Context, c *character.Character) error

	// SaveBreakdown caches the last-computed net worth breakdown under its
	// own key.
	SaveBreakdown(ctx context.Context, id string, b networth.Breakdown) error
	// LoadBreakdown returns the cached breakdown; ok=false when the cache is
	// missing or live cash has drifted from the cached figure.
	LoadBreakdown(ctx context.Context, id string, currentCash decimal.Decimal) (networth.Breakdown, bool, error)
}
