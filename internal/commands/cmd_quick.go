package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/core/logging"
	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/validate"
	"github.com/colonyops/dayplan/internal/printer"
)

// PromptFunc asks for one item's text. It returns huh.ErrUserAborted when
// the user cancels.
type PromptFunc func(count int, text *string) error

type QuickCmd struct {
	flags  *Flags
	prompt PromptFunc

	// Command-specific flags
	plain bool
}

// NewQuickCmd creates a new quick command
func NewQuickCmd(flags *Flags) *QuickCmd {
	return &QuickCmd{flags: flags, prompt: huhPrompt}
}

// Register adds the quick command to the application
func (cmd *QuickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "quick",
		Usage:       "Add items one prompt at a time",
		UsageText:   "dayplan quick [options]",
		Description: "Prompts for items until an empty entry or ctrl+c, then prints the list.",
		Flags: []cli.Flag{
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

func (cmd *QuickCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "quick")
	p := printer.Ctx(ctx)

	aborted, err := cmd.collect()
	if err != nil {
		return err
	}
	if aborted {
		p.Warnf("Entry cancelled, keeping %d item(s)", cmd.flags.List.Len())
	}

	log.Info().Ctx(ctx).Int("items", cmd.flags.List.Len()).Msg("quick entry finished")
	return p.List(cmd.flags.Config.Heading, cmd.flags.List.Items(), cmd.plain)
}

// collect prompts until the user submits an empty entry or aborts. Items
// added before an abort are kept.
func (cmd *QuickCmd) collect() (aborted bool, err error) {
	for {
		var text string
		err := cmd.prompt(cmd.flags.List.Len(), &text)
		if errors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("prompt: %w", err)
		}

		if strings.TrimSpace(text) == "" {
			return false, nil
		}
		cmd.flags.List.Add(text)
	}
}

func huhPrompt(count int, text *string) error {
	title := "What's next?"
	if count == 0 {
		title = "What's first?"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Leave empty to finish").
				Placeholder("Add a todo").
				Value(text).
				Validate(func(s string) error {
					// Empty finishes the loop, so only whitespace-only input is refused.
					if s == "" {
						return nil
					}
					return validate.ItemText(s)
				}),
		),
	).WithTheme(styles.FormTheme()).Run()
}
