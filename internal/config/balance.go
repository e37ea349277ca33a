package config

// TaxBracket taxes the slice of monthly income up to UpTo at the marginal Rate.
// Brackets are evaluated in ascending UpTo order; income above the last bracket
// is taxed at Balance.TopTaxRate.
type TaxBracket struct {
	UpTo float64 `yaml:"up_to" json:"up_to"`
	Rate float64 `yaml:"rate" json:"rate"`
}

// SaleTier describes the penalty stack applied when a property is sold after
// fewer than MaxMonthsHeld whole months. Tiers are evaluated in ascending
// order; the first matching tier wins. A MaxMonthsHeld of 0 means "no upper
// bound" and marks the penalty-free tier.
type SaleTier struct {
	MaxMonthsHeld     int     `yaml:"max_months_held" json:"max_months_held"`
	ValueMultiplier   float64 `yaml:"value_multiplier" json:"value_multiplier"`
	ClosingMultiplier float64 `yaml:"closing_multiplier" json:"closing_multiplier"`
	FlatCostRate      float64 `yaml:"flat_cost_rate" json:"flat_cost_rate"`
}

// HealthWeights blends basic needs and inverted stress into the daily health
// convergence target. The weights should sum to 1.
type HealthWeights struct {
	Hunger  float64 `yaml:"hunger" json:"hunger"`
	Thirst  float64 `yaml:"thirst" json:"thirst"`
	Energy  float64 `yaml:"energy" json:"energy"`
	Comfort float64 `yaml:"comfort" json:"comfort"`
	Stress  float64 `yaml:"stress" json:"stress"`
}

// Balance holds the simulation balance configuration
type Balance struct {
	// Recurring monthly expense lookups, keyed by housing/vehicle category
	HousingCost   map[string]float64 `yaml:"housing_cost" json:"housing_cost"`
	TransportCost map[string]float64 `yaml:"transport_cost" json:"transport_cost"`
	FoodCost      float64            `yaml:"food_cost" json:"food_cost"`

	// Opaque monthly obligations owed to external collaborators (business
	// upkeep etc.), summed into the monthly total without inspection.
	ExternalObligations float64 `yaml:"external_obligations" json:"external_obligations"`

	// Progressive income tax over total monthly income
	TaxBrackets []TaxBracket `yaml:"tax_brackets" json:"tax_brackets"`
	TopTaxRate  float64      `yaml:"top_tax_rate" json:"top_tax_rate"`

	// Mortgage defaults applied when a listing omits its own terms
	MortgageTermYears  int     `yaml:"mortgage_term_years" json:"mortgage_term_years"`
	MortgageAnnualRate float64 `yaml:"mortgage_annual_rate" json:"mortgage_annual_rate"`

	// Property sale penalty stack
	SaleTiers              []SaleTier `yaml:"sale_tiers" json:"sale_tiers"`
	ClosingCostRate        float64    `yaml:"closing_cost_rate" json:"closing_cost_rate"`
	EarlyPayoffPenaltyRate float64    `yaml:"early_payoff_penalty_rate" json:"early_payoff_penalty_rate"`
	EarlyPayoffMonths      int        `yaml:"early_payoff_months" json:"early_payoff_months"`

	// Lifestyle items
	ResaleFraction          float64 `yaml:"resale_fraction" json:"resale_fraction"`
	DepreciationPerMonth    float64 `yaml:"depreciation_per_month" json:"depreciation_per_month"`
	DepreciationCap         float64 `yaml:"depreciation_cap" json:"depreciation_cap"`
	SubscriptionValueMonths int     `yaml:"subscription_value_months" json:"subscription_value_months"`

	// Daily needs decay
	HungerDecayPerDay float64 `yaml:"hunger_decay_per_day" json:"hunger_decay_per_day"`
	ThirstDecayPerDay float64 `yaml:"thirst_decay_per_day" json:"thirst_decay_per_day"`
	EnergyDecayPerDay float64 `yaml:"energy_decay_per_day" json:"energy_decay_per_day"`

	// Daily comfort adjustment by housing category (can be negative)
	HousingComfortPerDay map[string]float64 `yaml:"housing_comfort_per_day" json:"housing_comfort_per_day"`

	// Health convergence
	HealthWeights        HealthWeights `yaml:"health_weights" json:"health_weights"`
	MaxHealthDeltaPerDay float64       `yaml:"max_health_delta_per_day" json:"max_health_delta_per_day"`

	// Monthly slow health adjustments: each of happiness, social connections
	// and environmental impact contributes (value-50)/50 * its factor.
	HappinessHealthFactor float64 `yaml:"happiness_health_factor" json:"happiness_health_factor"`
	SocialHealthFactor    float64 `yaml:"social_health_factor" json:"social_health_factor"`
	EnvironmentFactor     float64 `yaml:"environment_factor" json:"environment_factor"`

	// Payroll
	PayPeriodDays       int     `yaml:"pay_period_days" json:"pay_period_days"`
	PayPeriodsPerYear   int     `yaml:"pay_periods_per_year" json:"pay_periods_per_year"`
	SalaryVariancePct   float64 `yaml:"salary_variance_pct" json:"salary_variance_pct"`
	AccrualDaysPerMonth int     `yaml:"accrual_days_per_month" json:"accrual_days_per_month"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		HousingCost: map[string]float64{
			"none":   0,
			"shared": 600,
			"rented": 1500,
			"owned":  500,
			"luxury": 4500,
		},
		TransportCost: map[string]float64{
			"none":     0,
			"bicycle":  30,
			"economy":  250,
			"standard": 450,
			"luxury":   900,
			"premium":  1600,
		},
		FoodCost:            400,
		ExternalObligations: 0,
		TaxBrackets: []TaxBracket{
			{UpTo: 1000, Rate: 0.10},
			{UpTo: 4000, Rate: 0.15},
			{UpTo: 8000, Rate: 0.22},
			{UpTo: 15000, Rate: 0.28},
		},
		TopTaxRate:         0.35,
		MortgageTermYears:  30,
		MortgageAnnualRate: 0.055,
		SaleTiers: []SaleTier{
			{MaxMonthsHeld: 1, ValueMultiplier: 0.85, ClosingMultiplier: 1.5, FlatCostRate: 0.05},
			{MaxMonthsHeld: 6, ValueMultiplier: 0.92, ClosingMultiplier: 1.25, FlatCostRate: 0.03},
			{MaxMonthsHeld: 0, ValueMultiplier: 1.0, ClosingMultiplier: 1.0, FlatCostRate: 0},
		},
		ClosingCostRate:        0.07,
		EarlyPayoffPenaltyRate: 0.02,
		EarlyPayoffMonths:      36,

		ResaleFraction:          0.85,
		DepreciationPerMonth:    0.05,
		DepreciationCap:         0.75,
		SubscriptionValueMonths: 3,

		HungerDecayPerDay: 4,
		ThirstDecayPerDay: 5,
		EnergyDecayPerDay: 3,
		HousingComfortPerDay: map[string]float64{
			"none":   -3,
			"shared": -0.5,
			"rented": 0.5,
			"owned":  1,
			"luxury": 2,
		},
		HealthWeights: HealthWeights{
			Hunger:  0.25,
			Thirst:  0.25,
			Energy:  0.20,
			Comfort: 0.10,
			Stress:  0.20,
		},
		MaxHealthDeltaPerDay:  2,
		HappinessHealthFactor: 1.0,
		SocialHealthFactor:    0.5,
		EnvironmentFactor:     0.5,

		PayPeriodDays:       14,
		PayPeriodsPerYear:   26,
		SalaryVariancePct:   0.03,
		AccrualDaysPerMonth: 30,
	}
}

// Comfortable returns a forgiving balance for relaxed play
func Comfortable() Balance {
	cfg := Default()
	cfg.FoodCost = 300
	cfg.HungerDecayPerDay = 3
	cfg.ThirstDecayPerDay = 4
	cfg.EnergyDecayPerDay = 2
	cfg.TopTaxRate = 0.30
	return cfg
}

// Hardcore returns a punishing balance for experienced players
func Hardcore() Balance {
	cfg := Default()
	cfg.FoodCost = 550
	cfg.HungerDecayPerDay = 6
	cfg.ThirstDecayPerDay = 7
	cfg.EnergyDecayPerDay = 5
	cfg.TopTaxRate = 0.40
	cfg.EarlyPayoffPenaltyRate = 0.03
	return cfg
}
