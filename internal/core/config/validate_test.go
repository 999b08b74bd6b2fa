package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func fieldNames(errs criterio.FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"blank heading", func(c *Config) { c.Heading = "   " }, []string{"heading"}},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "neon" }, []string{"tui.theme"}},
		{"unknown strategy", func(c *Config) { c.IDs.Strategy = "uuid" }, []string{"ids.strategy"}},
		{"zero max", func(c *Config) { c.IDs.Max = 0 }, []string{"ids.max"}},
		{"negative max", func(c *Config) { c.IDs.Max = -5 }, []string{"ids.max"}},
		{
			"multiple errors",
			func(c *Config) {
				c.TUI.Theme = "neon"
				c.IDs.Max = -1
			},
			[]string{"tui.theme", "ids.max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.ElementsMatch(t, tt.fields, fieldNames(fieldErrs))
		})
	}
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{"config_file"}, fieldNames(fieldErrs))
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_MissingFileIsFine(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep("/definitely/not/here.yaml"))
}
