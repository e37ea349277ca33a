// Package sim is the simulation engine: the orchestrator that routes every
// mutation of the character aggregate through validated commands, recomputes
// net worth, persists write-through and notifies observers.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/catalog"
	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/networth"
	"github.com/ssage19/Aspira-sub004/internal/store"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

type Engine struct {
	Characters store.Repository
	Catalog    catalog.Catalog
	Balance    config.Balance
	Clock      Clock
	Events     telemetry.Recorder
	Log        *logrus.Logger

	rng *rand.Rand
}

// Options configures a new Engine. Zero-value fields fall back to sane
// defaults; Seed fixes the payroll variance RNG for deterministic runs.
type Options struct {
	Characters store.Repository
	Catalog    catalog.Catalog
	Balance    config.Balance
	Clock      Clock
	Events     telemetry.Recorder
	Log        *logrus.Logger
	Seed       int64
}

func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Events == nil {
		opts.Events = telemetry.NopRecorder{}
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetLevel(logrus.WarnLevel)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &Engine{
		Characters: opts.Characters,
		Catalog:    opts.Catalog,
		Balance:    opts.Balance,
		Clock:      opts.Clock,
		Events:     opts.Events,
		Log:        opts.Log,
		rng:        rand.New(rand.NewSource(opts.Seed)),
	}
}

// CreateCharacter seeds a fresh character aggregate and persists it.
func (e *Engine) CreateCharacter(ctx context.Context, id, name string, startingCash float64) (*character.Character, error) {
	c := character.New(id, name, ledger.FromFloat(startingCash), e.now())
	c.NetWorth = c.Ledger.Cash
	if err := e.Characters.Save(ctx, c); err != nil {
		return nil, err
	}
	e.Log.WithFields(logrus.Fields{
		"character": id,
		"cash":      c.Ledger.Cash,
	}).Info("character created")
	return c, nil
}

func (e *Engine) load(ctx context.Context, id string) (*character.Character, error) {
	c, ok, err := e.Characters.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: character %s", ErrNotFound, id)
	}
	return c, nil
}

// commit recomputes net worth from first principles, stamps a new revision
// and writes through the character document and the breakdown cache.
func (e *Engine) commit(ctx context.Context, c *character.Character) (networth.Breakdown, error) {
	b := networth.Calculate(c, e.now(), e.Balance)
	c.NetWorth = b.Total
	c.Touch()
	if err := e.Characters.Save(ctx, c); err != nil {
		return networth.Breakdown{}, err
	}
	if err := e.Characters.SaveBreakdown(ctx, c.ID, b); err != nil {
		return networth.Breakdown{}, err
	}
	return b, nil
}

func (e *Engine) emit(eventType telemetry.EventType, metadata telemetry.EventMetadata) {
	if err := e.Events.RecordEvent(eventType, metadata); err != nil {
		e.Log.WithError(err).Warn("record event")
	}
}

func (e *Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// NetWorthBreakdown returns the labelled breakdown, served from the cache
// when live cash still matches, recomputed and re-cached otherwise.
func (e *Engine) NetWorthBreakdown(ctx context.Context, characterID string) (networth.Breakdown, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return networth.Breakdown{}, err
	}
	if b, ok, err := e.Characters.LoadBreakdown(ctx, c.ID, c.Ledger.Cash); err == nil && ok {
		return b, nil
	} else if err != nil {
		return networth.Breakdown{}, err
	}
	b := networth.Calculate(c, e.now(), e.Balance)
	if err := e.Characters.SaveBreakdown(ctx, c.ID, b); err != nil {
		return networth.Breakdown{}, err
	}
	return b, nil
}

// Snapshot is the read-only query surface consumed by UI and trackers.
type Snapshot struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Cash        decimal.Decimal       `json:"cash"`
	NetWorth    decimal.Decimal       `json:"net_worth"`
	Attributes  character.Attributes  `json:"attributes"`
	Needs       character.Needs       `json:"needs"`
	Housing     character.HousingType `json:"housing"`
	Vehicle     character.VehicleType `json:"vehicle"`
	Assets      int                   `json:"assets"`
	Properties  int                   `json:"properties"`
	Lifestyle   int                   `json:"lifestyle"`
	DaysElapsed int                   `json:"days_elapsed"`
	Revision    int64                 `json:"revision"`
}

// Snapshot returns the current read-only view of the character.
func (e *Engine) Snapshot(ctx context.Context, characterID string) (Snapshot, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:          c.ID,
		Name:        c.Name,
		Cash:        c.Ledger.Cash,
		NetWorth:    c.NetWorth,
		Attributes:  c.Attributes,
		Needs:       c.Needs,
		Housing:     c.Housing,
		Vehicle:     c.Vehicle,
		Assets:      len(c.Portfolio.Assets),
		Properties:  len(c.Portfolio.Properties),
		Lifestyle:   len(c.Lifestyle),
		DaysElapsed: c.DaysElapsed,
		Revision:    c.Revision,
	}, nil
}
