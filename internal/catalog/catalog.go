// Package catalog holds the static tables of purchasable assets, properties
// and lifestyle items. Listings are read-only inputs to the engine's acquire
// operations; designing catalog content is out of scope here, so the built-in
// set is deliberately small.
package catalog

import (
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

// AssetListing is a purchasable investment.
type AssetListing struct {
	ID       string                  `yaml:"id" json:"id"`
	Name     string                  `yaml:"name" json:"name"`
	Category portfolio.AssetCategory `yaml:"category" json:"category"`
	Price    float64                 `yaml:"price" json:"price"`
}

// PropertyListing is a purchasable property. TermYears and AnnualRate may be
// zero, in which case the engine applies the configured mortgage defaults.
type PropertyListing struct {
	ID              string  `yaml:"id" json:"id"`
	Name            string  `yaml:"name" json:"name"`
	Category        string  `yaml:"category" json:"category"`
	Price           float64 `yaml:"price" json:"price"`
	DownPayment     float64 `yaml:"down_payment" json:"down_payment"`
	TermYears       int     `yaml:"term_years" json:"term_years"`
	AnnualRate      float64 `yaml:"annual_rate" json:"annual_rate"`
	MonthlyIncome   float64 `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses float64 `yaml:"monthly_expenses" json:"monthly_expenses"`
}

// LifestyleListing is a purchasable lifestyle item with its acquisition
// rules: uniqueness, prerequisite listings, mutually exclusive listings and a
// minimum net worth gate.
type LifestyleListing struct {
	ID           string             `yaml:"id" json:"id"`
	Name         string             `yaml:"name" json:"name"`
	Category     lifestyle.Category `yaml:"category" json:"category"`
	Price        float64            `yaml:"price" json:"price"`
	MonthlyCost  float64            `yaml:"monthly_cost" json:"monthly_cost"`
	DurationDays int                `yaml:"duration_days" json:"duration_days"`
	Effects      lifestyle.Effects  `yaml:"effects" json:"effects"`
	Unique       bool               `yaml:"unique" json:"unique"`
	Requires     []string           `yaml:"requires" json:"requires"`
	Excludes     []string           `yaml:"excludes" json:"excludes"`
	MinNetWorth  float64            `yaml:"min_net_worth" json:"min_net_worth"`
}

// Catalog bundles all listing tables.
type Catalog struct {
	Assets     []AssetListing     `yaml:"assets" json:"assets"`
	Properties []PropertyListing  `yaml:"properties" json:"properties"`
	Lifestyle  []LifestyleListing `yaml:"lifestyle" json:"lifestyle"`
}

// Asset finds an asset listing by ID.
func (c Catalog) Asset(id string) (AssetListing, bool) {
	for _, l := range c.Assets {
		if l.ID == id {
			return l, true
		}
	}
	return AssetListing{}, false
}

// Property finds a property listing by ID.
func (c Catalog) Property(id string) (PropertyListing, bool) {
	for _, l := range c.Properties {
		if l.ID == id {
			return l, true
		}
	}
	return PropertyListing{}, false
}

// LifestyleItem finds a lifestyle listing by ID.
func (c Catalog) LifestyleItem(id string) (LifestyleListing, bool) {
	for _, l := range c.Lifestyle {
		if l.ID == id {
			return l, true
		}
	}
	return LifestyleListing{}, false
}
