package commands

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/core/logging"
	"github.com/colonyops/dayplan/internal/printer"
)

type ConfigValidateCmd struct {
	flags *Flags
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "dayplan config validate",
				Description: "Validates the configuration file, checking the theme, id strategy and heading.",
				Action:      cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "config validate")
	p := printer.Ctx(ctx)

	if _, err := os.Stat(cmd.flags.ConfigPath); errors.Is(err, os.ErrNotExist) {
		p.Infof("No config file at %s, checking defaults", cmd.flags.ConfigPath)
	}

	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	if err == nil {
		p.Successf("Configuration is valid: %s", cmd.flags.ConfigPath)
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		p.Errorf("%s: %v", fe.Field, fe.Err)
	}
	p.Printf("")
	p.Errorf("%d error(s) found", len(fieldErrs))
	return cli.Exit("", 1)
}
