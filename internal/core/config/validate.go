package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/internal/core/validate"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		validate.ItemTextField("heading", c.Heading),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("ids.strategy", c.IDs.Strategy, strategyIsValid),
		criterio.Run("ids.max", c.IDs.Max, positive),
	)
}

// ValidateDeep runs Validate and additionally checks that the config file,
// when present, is a readable regular file.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.Validate(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func strategyIsValid(s todo.Strategy) error {
	if !s.IsValid() {
		return fmt.Errorf("unknown strategy %q", s)
	}
	return nil
}

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}
