package doctor

import (
	"context"
	"os"

	"golang.org/x/term"
)

// isTerminalFunc reports whether fd is a terminal.
// Package-level variable to allow test overrides.
var isTerminalFunc = term.IsTerminal

// TerminalCheck reports whether stdin and stdout are attached to a terminal,
// which the interactive list requires.
type TerminalCheck struct{}

// NewTerminalCheck creates a new terminal check.
func NewTerminalCheck() *TerminalCheck {
	return &TerminalCheck{}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	streams := []struct {
		label string
		file  *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
	}

	for _, s := range streams {
		if isTerminalFunc(int(s.file.Fd())) {
			result.Items = append(result.Items, CheckItem{
				Label:  s.label,
				Status: StatusPass,
				Detail: "terminal",
			})
			continue
		}
		result.Items = append(result.Items, CheckItem{
			Label:  s.label,
			Status: StatusWarn,
			Detail: "not a terminal, use 'dayplan run' for scripted input",
		})
	}

	return result
}
