package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, Default().FoodCost, cfg.Balance.FoodCost)
}

func TestLoad_ModePresetWithOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	doc := `
version: "2"
mode: hardcore
balance:
  food_cost: 700
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Version)
	assert.Equal(t, "hardcore", cfg.Mode)
	// Explicit value wins over the preset...
	assert.Equal(t, 700.0, cfg.Balance.FoodCost)
	// ...while untouched preset values stay.
	assert.Equal(t, Hardcore().TopTaxRate, cfg.Balance.TopTaxRate)
	assert.Equal(t, Hardcore().HungerDecayPerDay, cfg.Balance.HungerDecayPerDay)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("balance: [what"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("FOOD_COST", "325")
	t.Setenv("MORTGAGE_TERM_YEARS", "15")
	t.Setenv("MAX_HEALTH_DELTA_PER_DAY", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 325.0, cfg.FoodCost)
	assert.Equal(t, 15, cfg.MortgageTermYears)
	assert.Equal(t, Default().MaxHealthDeltaPerDay, cfg.MaxHealthDeltaPerDay)
}

func TestFromEnv_ModePreset(t *testing.T) {
	t.Setenv("SIM_MODE", "comfortable")

	cfg := FromEnv()
	assert.Equal(t, Comfortable().FoodCost, cfg.FoodCost)
	assert.Equal(t, Comfortable().TopTaxRate, cfg.TopTaxRate)
}
