package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk simulation configuration.
type Config struct {
	Version string  `yaml:"version" json:"version"`
	Mode    string  `yaml:"mode" json:"mode"`
	Balance Balance `yaml:"balance" json:"balance"`
}

// Load reads a yaml config file. Missing file falls back to defaults; a set
// Mode selects a preset before balance overrides are applied.
func Load(path string) (Config, error) {
	cfg := Config{
		Version: "1",
		Balance: Default(),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	var loaded Config
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return Config{}, err
	}

	switch loaded.Mode {
	case "comfortable":
		cfg.Balance = Comfortable()
	case "hardcore":
		cfg.Balance = Hardcore()
	}
	if loaded.Version != "" {
		cfg.Version = loaded.Version
	}
	cfg.Mode = loaded.Mode

	// Overlay explicit balance values on top of the preset.
	if err := overlayBalance(&cfg.Balance, b); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlayBalance(base *Balance, raw []byte) error {
	var doc struct {
		Balance yaml.Node `yaml:"balance"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc.Balance.Kind == 0 {
		return nil
	}
	return doc.Balance.Decode(base)
}
