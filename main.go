package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/commands"
	"github.com/colonyops/dayplan/internal/core/config"
	"github.com/colonyops/dayplan/internal/core/logging"
	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/internal/printer"
	"github.com/colonyops/dayplan/internal/tui"
	"github.com/colonyops/dayplan/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, buildInfo() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func build(b tui.BuildInfo) string {
	short := b.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s) %s", b.Version, short, b.Date)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	info := buildInfo()

	app := &cli.Command{
		Name:        commands.AppName,
		Usage:       commands.AppUsage,
		UsageText:   commands.AppUsageText,
		Description: commands.AppDescription,
		Version:     build(info),
		Flags:       commands.GlobalFlags(flags),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The TUI owns the terminal, so logs always go to a file
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Read(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Theme != "" {
				cfg.TUI.Theme = flags.Theme
			}

			if commands.ValidatesConfigAtStartup(c.Args().First()) {
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("load config: invalid config: %w", err)
				}
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			styles.UseTheme(cfg.TUI.Theme)

			ids, err := cfg.IDSource()
			if err != nil {
				ids = &todo.RandomIDs{Max: todo.DefaultMaxID}
			}
			flags.List = todo.NewList(
				todo.WithIDSource(ids),
				todo.WithLogger(logging.Component("list")),
			)

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("theme", cfg.TUI.Theme).
				Str("ids", string(cfg.IDs.Strategy)).
				Msg("dayplan starting")

			ctx = printer.WithPrinter(ctx, printer.New(c.Root().Writer, c.Root().ErrWriter))
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.RegisterAll(app, flags, info)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
