package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/networth"
)

// FileRepo persists character state to JSON files.
type FileRepo struct {
	mu      sync.RWMutex
	dataDir string
	cache   map[string]*character.Character
}

// NewFileRepo creates a file-based character repository rooted at dataDir.
func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileRepo{
		dataDir: dataDir,
		cache:   make(map[string]*character.Character),
	}, nil
}

func (r *FileRepo) characterPath(id string) string {
	return filepath.Join(r.dataDir, id+".json")
}

func (r *FileRepo) breakdownPath(id string) string {
	return filepath.Join(r.dataDir, id+".networth.json")
}

// Load returns the character, loading from file when not cached.
func (r *FileRepo) Load(ctx context.Context, id string) (*character.Character, bool, error) {
	_ = ctx
	r.mu.RLock()
	if c, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return c, true, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock
	if c, ok := r.cache[id]; ok {
		return c, true, nil
	}

	data, err := os.ReadFile(r.characterPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var c character.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, false, err
	}
	r.cache[id] = &c
	return &c, true, nil
}

// Save writes the character document.
func (r *FileRepo) Save(ctx context.Context, c *character.Character) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache[c.ID] = c

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.characterPath(c.ID), data, 0o644)
}

// SaveBreakdown caches the breakdown under its own key.
func (r *FileRepo) SaveBreakdown(ctx context.Context, id string, b networth.Breakdown) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.breakdownPath(id), data, 0o644)
}

// LoadBreakdown returns the cached breakdown, treating it as stale when live
// cash no longer matches the cash recorded in it.
func (r *FileRepo) LoadBreakdown(ctx context.Context, id string, currentCash decimal.Decimal) (networth.Breakdown, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.breakdownPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return networth.Breakdown{}, false, nil
		}
		return networth.Breakdown{}, false, err
	}

	var b networth.Breakdown
	if err := json.Unmarshal(data, &b); err != nil {
		return networth.Breakdown{}, false, err
	}
	if !b.Cash.Equal(currentCash) {
		return networth.Breakdown{}, false, nil
	}
	return b, true, nil
}
