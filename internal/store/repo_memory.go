package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/networth"
)

// MemoryRepo keeps everything in memory (dev/test use).
type MemoryRepo struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
	breakdowns map[string]networth.Breakdown
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		characters: make(map[string]*character.Character),
		breakdowns: make(map[string]networth.Breakdown),
	}
}

func (r *MemoryRepo) Load(ctx context.Context, id string) (*character.Character, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.characters[id]
	return c, ok, nil
}

func (r *MemoryRepo) Save(ctx context.Context, c *character.Character) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters[c.ID] = c
	return nil
}

func (r *MemoryRepo) SaveBreakdown(ctx context.Context, id string, b networth.Breakdown) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breakdowns[id] = b
	return nil
}

func (r *MemoryRepo) LoadBreakdown(ctx context.Context, id string, currentCash decimal.Decimal) (networth.Breakdown, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.breakdowns[id]
	if !ok || !b.Cash.Equal(currentCash) {
		return networth.Breakdown{}, false, nil
	}
	return b, true, nil
}
