package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Balance {
	cfg := Default()

	if val, ok := getEnvFloat("FOOD_COST"); ok && val >= 0 {
		cfg.FoodCost = val
	}
	if val, ok := getEnvFloat("TOP_TAX_RATE"); ok && val >= 0 {
		cfg.TopTaxRate = val
	}
	if val := getEnvInt("MORTGAGE_TERM_YEARS"); val > 0 {
		cfg.MortgageTermYears = val
	}
	if val, ok := getEnvFloat("MORTGAGE_ANNUAL_RATE"); ok && val > 0 {
		cfg.MortgageAnnualRate = val
	}
	if val, ok := getEnvFloat("HUNGER_DECAY_PER_DAY"); ok && val >= 0 {
		cfg.HungerDecayPerDay = val
	}
	if val, ok := getEnvFloat("THIRST_DECAY_PER_DAY"); ok && val >= 0 {
		cfg.ThirstDecayPerDay = val
	}
	if val, ok := getEnvFloat("ENERGY_DECAY_PER_DAY"); ok && val >= 0 {
		cfg.EnergyDecayPerDay = val
	}
	if val, ok := getEnvFloat("MAX_HEALTH_DELTA_PER_DAY"); ok && val > 0 {
		cfg.MaxHealthDeltaPerDay = val
	}
	if val, ok := getEnvFloat("EXTERNAL_OBLIGATIONS"); ok && val >= 0 {
		cfg.ExternalObligations = val
	}

	// Support preset modes
	if mode := os.Getenv("SIM_MODE"); mode != "" {
		switch mode {
		case "comfortable":
			return Comfortable()
		case "hardcore":
			return Hardcore()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) (float64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
