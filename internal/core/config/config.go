// Package config handles configuration loading and validation for dayplan.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
)

// DefaultHeading is shown above the add form when no heading is configured.
const DefaultHeading = "What's the plan for today?"

// Config holds the application configuration.
type Config struct {
	Heading string    `yaml:"heading"`
	TUI     TUIConfig `yaml:"tui"`
	IDs     IDConfig  `yaml:"ids"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"` // built-in theme name
}

// IDConfig controls how new item ids are generated.
type IDConfig struct {
	Strategy todo.Strategy `yaml:"strategy"` // random, sequential, checked
	Max      int           `yaml:"max"`      // exclusive upper bound for random strategies
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Heading: DefaultHeading,
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		IDs: IDConfig{
			Strategy: todo.StrategyRandom,
			Max:      todo.DefaultMaxID,
		},
	}
}

// Load reads and validates configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses configuration from the given path and applies defaults
// without validating it.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Heading == "" {
		c.Heading = defaults.Heading
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = defaults.IDs.Strategy
	}
	if c.IDs.Max == 0 {
		c.IDs.Max = defaults.IDs.Max
	}
}

// IDSource builds the configured item id generator.
func (c *Config) IDSource() (todo.IDSource, error) {
	return todo.NewIDSource(c.IDs.Strategy, c.IDs.Max)
}
