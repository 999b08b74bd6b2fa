// Command docgen generates CLI reference documentation from the dayplan
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/commands"
	"github.com/colonyops/dayplan/internal/tui"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:        commands.AppName,
		Usage:       commands.AppUsage,
		UsageText:   commands.AppUsageText,
		Description: commands.AppDescription,
		Flags:       commands.GlobalFlags(flags),
	}
	root = commands.RegisterAll(root, flags, tui.BuildInfo{})

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
