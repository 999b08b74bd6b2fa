package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/core/logging"
	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/internal/printer"
	"github.com/colonyops/dayplan/pkg/iolines"
)

type RunCmd struct {
	flags *Flags
	input iolines.FileReader

	// Command-specific flags
	plain bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run line commands against a fresh list",
		UsageText: "dayplan run [options]",
		Description: `Reads commands from a file or piped stdin, one per line:

  add <text>         add an item to the top of the list
  edit <n> <text>    replace the text of item n
  toggle <n>         flip item n between open and done
  remove <n>         delete item n
  list               print the list

<n> is the 1-based position in the current list. Blank lines and lines
starting with # are ignored. The final list is printed when the script ends.

Example:
  printf 'add buy milk\nadd walk dog\ntoggle 2\n' | dayplan run`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print raw markdown instead of rendered output",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "run")
	p := printer.Ctx(ctx)

	in, err := cmd.input.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	heading := cmd.flags.Config.Heading
	script := NewScript(cmd.flags.List, func(items []todo.Item) error {
		return p.List(heading, items, cmd.plain)
	}, logging.ComponentCtx(ctx, "script"))

	if err := script.Run(in); err != nil {
		return fmt.Errorf("run %s: %w", cmd.input.Name(), err)
	}

	log.Info().Ctx(ctx).Str("source", cmd.input.Name()).Int("items", cmd.flags.List.Len()).Msg("script finished")
	return p.List(heading, cmd.flags.List.Items(), cmd.plain)
}
