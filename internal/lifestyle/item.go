// Package lifestyle models purchased lifestyle items: one-time attribute
// effects at acquisition, recurring maintenance, duration-based expiry with
// exact effect reversal, and residual value for net worth accounting.
package lifestyle

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryLuxury       Category = "luxury"
	CategoryHobby        Category = "hobby"
	CategoryWellness     Category = "wellness"
	CategorySubscription Category = "subscription"
	CategoryVacation     Category = "vacation"
	CategoryExperience   Category = "experience"
)

// Effects are the attribute deltas an item carries. Happiness and Prestige
// apply once at acquisition; the rest are ongoing while the item is owned.
// Expiry of a duration-bearing item reverses all of them exactly.
type Effects struct {
	Happiness           float64 `yaml:"happiness" json:"happiness,omitempty"`
	Prestige            float64 `yaml:"prestige" json:"prestige,omitempty"`
	Health              float64 `yaml:"health" json:"health,omitempty"`
	TimeCommitment      float64 `yaml:"time_commitment" json:"time_commitment,omitempty"`
	SocialStatus        float64 `yaml:"social_status" json:"social_status,omitempty"`
	EnvironmentalImpact float64 `yaml:"environmental_impact" json:"environmental_impact,omitempty"`
	StressReduction     float64 `yaml:"stress_reduction" json:"stress_reduction,omitempty"`
}

// Item is one owned lifestyle purchase.
type Item struct {
	ID           string          `json:"id"`
	ListingID    string          `json:"listing_id"`
	Name         string          `json:"name"`
	Category     Category        `json:"category"`
	Price        decimal.Decimal `json:"price"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	Effects      Effects         `json:"effects"`
	DurationDays int             `json:"duration_days,omitempty"`
	AcquiredAt   time.Time       `json:"acquired_at"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
}

// NewItem creates an owned item; duration-bearing items get their end date
// derived from the acquisition time.
func NewItem(listingID, name string, category Category, price, monthlyCost decimal.Decimal, effects Effects, durationDays int, acquiredAt time.Time) Item {
	it := Item{
		ID:           uuid.NewString(),
		ListingID:    listingID,
		Name:         name,
		Category:     category,
		Price:        price,
		MonthlyCost:  monthlyCost,
		Effects:      effects,
		DurationDays: durationDays,
		AcquiredAt:   acquiredAt,
	}
	if durationDays > 0 {
		end := acquiredAt.AddDate(0, 0, durationDays)
		it.EndDate = &end
	}
	return it
}

// Temporary reports whether the item is duration-bearing. Temporary items
// never contribute to net worth.
func (it Item) Temporary() bool {
	return it.DurationDays > 0
}

// Expired reports whether a duration-bearing item's end date has passed.
func (it Item) Expired(now time.Time) bool {
	return it.EndDate != nil && now.After(*it.EndDate)
}

// ResidualValue is the depreciated value used for net worth accounting:
// price * (1 - min(cap, monthsOwned*rate)) for priced permanent items,
// monthlyCost*subscriptionMonths for pure subscriptions, zero for temporary
// items.
func (it Item) ResidualValue(now time.Time, ratePerMonth, cap float64, subscriptionMonths int) decimal.Decimal {
	if it.Temporary() {
		return decimal.Zero
	}
	if it.Price.IsZero() {
		return it.MonthlyCost.Mul(decimal.NewFromInt(int64(subscriptionMonths)))
	}
	months := wholeMonths(it.AcquiredAt, now)
	if months < 0 {
		months = 0
	}
	depreciation := float64(months) * ratePerMonth
	if depreciation > cap {
		depreciation = cap
	}
	return it.Price.Mul(decimal.NewFromFloat(1 - depreciation)).Round(2)
}

func wholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// MaintenanceTotal sums recurring monthly maintenance across items.
func MaintenanceTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].MonthlyCost)
	}
	return total
}

// ResidualTotal sums residual value across items.
func ResidualTotal(items []Item, now time.Time, ratePerMonth, cap float64, subscriptionMonths int) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].ResidualValue(now, ratePerMonth, cap, subscriptionMonths))
	}
	return total
}
