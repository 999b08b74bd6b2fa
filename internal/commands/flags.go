package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/dayplan/internal/core/config"
	"github.com/colonyops/dayplan/internal/core/todo"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// List is the in-memory list every command operates on
	List *todo.List
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dayplan", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/dayplan/dayplan.log
// On Linux: $XDG_STATE_HOME/dayplan/dayplan.log (defaults to ~/.local/state/dayplan/dayplan.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "dayplan", "dayplan.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "dayplan", "dayplan.log")
	}

	return filepath.Join(home, ".local", "state", "dayplan", "dayplan.log")
}
