package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
)

// Load reads a catalog yaml file. A missing file falls back to the built-in
// default catalog.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Catalog{}, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Default is a small built-in catalog used by tests and the demo runner.
func Default() Catalog {
	return Catalog{
		Assets: []AssetListing{
			{ID: "index_fund", Name: "Broad Market Index Fund", Category: portfolio.AssetEquity, Price: 120},
			{ID: "gov_bond", Name: "Government Bond", Category: portfolio.AssetBond, Price: 100},
			{ID: "coin", Name: "Cryptocurrency", Category: portfolio.AssetCrypto, Price: 2500},
			{ID: "commodities", Name: "Commodity Basket", Category: portfolio.AssetOther, Price: 75},
		},
		Properties: []PropertyListing{
			{ID: "starter_condo", Name: "Starter Condo", Category: "residential",
				Price: 200000, DownPayment: 20000, MonthlyIncome: 1400, MonthlyExpenses: 250},
			{ID: "duplex", Name: "Rental Duplex", Category: "residential",
				Price: 350000, DownPayment: 50000, MonthlyIncome: 2600, MonthlyExpenses: 450},
			{ID: "retail_unit", Name: "Retail Unit", Category: "commercial",
				Price: 500000, DownPayment: 100000, TermYears: 20, AnnualRate: 0.062,
				MonthlyIncome: 4200, MonthlyExpenses: 900},
		},
		Lifestyle: []LifestyleListing{
			{ID: "gym_membership", Name: "Gym Membership", Category: lifestyle.CategoryWellness,
				MonthlyCost: 60, Unique: true,
				Effects: lifestyle.Effects{Health: 5, StressReduction: 3, TimeCommitment: 4}},
			{ID: "sailing_club", Name: "Sailing Club", Category: lifestyle.CategoryHobby,
				Price: 5000, MonthlyCost: 300, Unique: true, MinNetWorth: 50000,
				Effects: lifestyle.Effects{Happiness: 8, Prestige: 6, SocialStatus: 5, TimeCommitment: 8}},
			{ID: "art_collection", Name: "Art Collection", Category: lifestyle.CategoryLuxury,
				Price: 25000, MonthlyCost: 100, Unique: true, MinNetWorth: 100000,
				Effects: lifestyle.Effects{Happiness: 5, Prestige: 10}},
			{ID: "beach_vacation", Name: "Beach Vacation", Category: lifestyle.CategoryVacation,
				Price: 3500, DurationDays: 10,
				Effects: lifestyle.Effects{Happiness: 10, StressReduction: 8, SocialStatus: 2}},
			{ID: "safari_trip", Name: "Safari Expedition", Category: lifestyle.CategoryExperience,
				Price: 9000, DurationDays: 14, Requires: []string{"beach_vacation"},
				Effects: lifestyle.Effects{Happiness: 12, Prestige: 4, EnvironmentalImpact: -5}},
			{ID: "streaming_bundle", Name: "Streaming Bundle", Category: lifestyle.CategorySubscription,
				MonthlyCost: 45, Unique: true, Excludes: []string{"cinema_pass"},
				Effects: lifestyle.Effects{Happiness: 3, TimeCommitment: 6}},
			{ID: "cinema_pass", Name: "Cinema Pass", Category: lifestyle.CategorySubscription,
				MonthlyCost: 30, Unique: true, Excludes: []string{"streaming_bundle"},
				Effects: lifestyle.Effects{Happiness: 3, SocialStatus: 2}},
		},
	}
}
