// Package character defines the single mutable simulation aggregate: cash
// ledger, holdings, lifestyle items, attributes and basic needs. All mutation
// goes through the engine's command surface; external consumers only read.
package character

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ssage19/Aspira-sub004/internal/job"
	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

type HousingType string

const (
	HousingNone   HousingType = "none"
	HousingShared HousingType = "shared"
	HousingRented HousingType = "rented"
	HousingOwned  HousingType = "owned"
	HousingLuxury HousingType = "luxury"
)

type VehicleType string

const (
	VehicleNone     VehicleType = "none"
	VehicleBicycle  VehicleType = "bicycle"
	VehicleEconomy  VehicleType = "economy"
	VehicleStandard VehicleType = "standard"
	VehicleLuxury   VehicleType = "luxury"
	VehiclePremium  VehicleType = "premium"
)

// Attributes are the slow-moving life stats, each clamped to [0,100].
type Attributes struct {
	Happiness           float64 `json:"happiness"`
	Prestige            float64 `json:"prestige"`
	Stress              float64 `json:"stress"`
	Health              float64 `json:"health"`
	SocialConnections   float64 `json:"social_connections"`
	EnvironmentalImpact float64 `json:"environmental_impact"`
}

// Needs are the fast-moving basic needs, each clamped to [0,100].
type Needs struct {
	Hunger  float64 `json:"hunger"`
	Thirst  float64 `json:"thirst"`
	Energy  float64 `json:"energy"`
	Comfort float64 `json:"comfort"`
}

// Character is the simulation aggregate. It is owned by the engine and never
// destroyed within a session; reset replaces it wholesale.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Ledger    ledger.Ledger       `json:"ledger"`
	Portfolio portfolio.Portfolio `json:"portfolio"`
	Lifestyle []lifestyle.Item    `json:"lifestyle"`

	Attributes Attributes `json:"attributes"`
	Needs      Needs      `json:"needs"`

	Housing HousingType `json:"housing"`
	Vehicle VehicleType `json:"vehicle"`

	Job *job.Job `json:"job,omitempty"`

	// NetWorth is derived; recomputed on every mutating operation.
	NetWorth decimal.Decimal `json:"net_worth"`

	// Revision signals "state changed" to external observers.
	Revision int64 `json:"revision"`

	// Tick bookkeeping. DaysElapsed counts processed simulation days;
	// LastProcessedDay guards against reprocessing the same day.
	DaysElapsed      int       `json:"days_elapsed"`
	LastProcessedDay time.Time `json:"last_processed_day"`

	CreatedAt time.Time `json:"created_at"`
}

// New creates a fresh character with neutral attributes and full needs.
func New(id, name string, startingCash decimal.Decimal, createdAt time.Time) *Character {
	return &Character{
		ID:     id,
		Name:   name,
		Ledger: ledger.New(startingCash),
		Attributes: Attributes{
			Happiness:           50,
			Prestige:            10,
			Stress:              20,
			Health:              80,
			SocialConnections:   50,
			EnvironmentalImpact: 50,
		},
		Needs: Needs{
			Hunger:  100,
			Thirst:  100,
			Energy:  100,
			Comfort: 70,
		},
		Housing:   HousingNone,
		Vehicle:   VehicleNone,
		CreatedAt: createdAt,
	}
}

// Touch stamps a new revision.
func (c *Character) Touch() {
	c.Revision++
}

// Clamp bounds a stat to [0,100]; NaN collapses to zero.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AdjustHappiness applies a clamped delta.
func (a *Attributes) AdjustHappiness(delta float64) { a.Happiness = Clamp(a.Happiness + safe(delta)) }

// AdjustPrestige applies a clamped delta.
func (a *Attributes) AdjustPrestige(delta float64) { a.Prestige = Clamp(a.Prestige + safe(delta)) }

// AdjustStress applies a clamped delta.
func (a *Attributes) AdjustStress(delta float64) { a.Stress = Clamp(a.Stress + safe(delta)) }

// AdjustHealth applies a clamped delta.
func (a *Attributes) AdjustHealth(delta float64) { a.Health = Clamp(a.Health + safe(delta)) }

// AdjustSocial applies a clamped delta.
func (a *Attributes) AdjustSocial(delta float64) {
	a.SocialConnections = Clamp(a.SocialConnections + safe(delta))
}

// AdjustEnvironmental applies a clamped delta.
func (a *Attributes) AdjustEnvironmental(delta float64) {
	a.EnvironmentalImpact = Clamp(a.EnvironmentalImpact + safe(delta))
}

// ApplyEffects applies an item's deltas at acquisition. Sign reverses them at
// expiry: ApplyEffects(fx, -1) is the algebraic inverse of ApplyEffects(fx, 1).
func (c *Character) ApplyEffects(fx lifestyle.Effects, sign float64) {
	c.Attributes.AdjustHappiness(sign * fx.Happiness)
	c.Attributes.AdjustPrestige(sign * fx.Prestige)
	c.Attributes.AdjustSocial(sign * fx.SocialStatus)
	c.Attributes.AdjustHealth(sign * fx.Health)
	c.Attributes.AdjustEnvironmental(sign * fx.EnvironmentalImpact)
	c.Attributes.AdjustStress(-sign * fx.StressReduction)
}

// LifestyleItemByID finds an owned item by instance identity.
func (c *Character) LifestyleItemByID(id string) (int, bool) {
	for i := range c.Lifestyle {
		if c.Lifestyle[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// OwnsListing reports whether any owned item came from the given catalog
// listing.
func (c *Character) OwnsListing(listingID string) bool {
	for i := range c.Lifestyle {
		if c.Lifestyle[i].ListingID == listingID {
			return true
		}
	}
	return false
}

// RemoveLifestyleItem deletes the item at index i.
func (c *Character) RemoveLifestyleItem(i int) {
	c.Lifestyle = append(c.Lifestyle[:i], c.Lifestyle[i+1:]...)
}

func safe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
