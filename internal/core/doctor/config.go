package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/dayplan/internal/core/config"
)

// ConfigCheck reports whether the config file exists and validates.
type ConfigCheck struct {
	path string
	cfg  *config.Config
}

// NewConfigCheck creates a config check for the config read from path.
func NewConfigCheck(path string, cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{path: path, cfg: cfg}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	detail := c.path
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		detail = "not found, using defaults"
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "config file",
		Status: StatusPass,
		Detail: detail,
	})

	err := c.cfg.ValidateDeep(c.path)
	if err == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "values",
			Status: StatusPass,
			Detail: "valid",
		})
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Items = append(result.Items, CheckItem{
			Label:  "values",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	for _, fe := range fieldErrs {
		result.Items = append(result.Items, CheckItem{
			Label:  fe.Field,
			Status: StatusFail,
			Detail: fe.Err.Error(),
		})
	}
	return result
}
