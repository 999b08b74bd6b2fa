// Package iolines reads line-oriented command input from a file flag or piped stdin.
package iolines

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrInteractiveStdin is returned when no file is given and stdin is a terminal.
var ErrInteractiveStdin = errors.New("no input provided (stdin is a terminal); use -f flag or pipe input")

// FileReader opens the file named by its flag, or stdin when the flag is empty.
type FileReader struct {
	fileFlagValue string

	// Stdin and IsTerminal default to os.Stdin and term.IsTerminal.
	Stdin      *os.File
	IsTerminal func(fd int) bool
}

func (fr *FileReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to script file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetFile sets the file path as if the flag had been passed.
func (fr *FileReader) SetFile(path string) {
	fr.fileFlagValue = path
}

// Name describes the input source for logs and error messages.
func (fr *FileReader) Name() string {
	if fr.fileFlagValue != "" {
		return fr.fileFlagValue
	}
	return "stdin"
}

// Open returns the input. The caller must close it.
func (fr *FileReader) Open() (io.ReadCloser, error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	stdin := fr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	isTerminal := fr.IsTerminal
	if isTerminal == nil {
		isTerminal = term.IsTerminal
	}

	if isTerminal(int(stdin.Fd())) {
		return nil, ErrInteractiveStdin
	}
	return io.NopCloser(stdin), nil
}
