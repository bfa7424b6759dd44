package cli

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

var cfgFile = "kifu/config.json"

// RenderConfig bounds the animated GIF frames.
type RenderConfig struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

// Config carries the defaults a user keeps between invocations.
type Config struct {
	Rules   string       `json:"rules"`
	Komi    float64      `json:"komi"`
	Render  RenderConfig `json:"render"`
	Verbose bool         `json:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Rules: "Japanese",
		Komi:  6.5,
		Render: RenderConfig{
			MaxWidth:  800,
			MaxHeight: 800,
		},
	}
}

// InitConfig loads the user's config file from the XDG config path,
// falling back to defaults when there is none.
func InitConfig() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return config, nil
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.WithMessage(err, "reading config")
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.WithMessagef(err, "parsing %s", absPath)
	}
	return config, nil
}

// Save writes the config to the XDG config path, creating it if needed.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.WithMessage(err, "locating config")
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(absPath, data, 0664)
}
