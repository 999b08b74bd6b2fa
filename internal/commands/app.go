package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/tui"
)

const (
	AppName      = "dayplan"
	AppUsage     = "A to-do list for the day"
	AppUsageText = "dayplan [global options] command [command options]"

	AppDescription = `Dayplan keeps a short in-memory list of things to do today.

Run 'dayplan' with no arguments to open the interactive list.
Run 'dayplan run' to apply line commands from a file or pipe.
Nothing is saved when dayplan exits.`
)

// GlobalFlags returns the root flags bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("DAYPLAN_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file",
			Sources:     cli.EnvVars("DAYPLAN_LOG_FILE"),
			Value:       DefaultLogFile(),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("DAYPLAN_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "theme",
			Usage:       fmt.Sprintf("color theme, overrides config (%v)", styles.ThemeNames()),
			Sources:     cli.EnvVars("DAYPLAN_THEME"),
			Destination: &flags.Theme,
		},
	}
}

// reportsConfigErrors lists the commands that print config problems
// themselves instead of failing at startup.
var reportsConfigErrors = []string{"config", "doctor"}

// ValidatesConfigAtStartup reports whether the root Before hook should
// reject an invalid config for the given first argument.
func ValidatesConfigAtStartup(firstArg string) bool {
	return !slices.Contains(reportsConfigErrors, firstArg)
}

// RegisterAll adds every subcommand to app and sets the TUI as the default
// action.
func RegisterAll(app *cli.Command, flags *Flags, build tui.BuildInfo) *cli.Command {
	tuiCmd := NewTuiCmd(flags, build)

	app = tuiCmd.Register(app)
	app = NewRunCmd(flags).Register(app)
	app = NewQuickCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewDoctorCmd(flags).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'dayplan --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
