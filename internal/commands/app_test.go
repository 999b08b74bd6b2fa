package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dayplan/internal/tui"
)

func TestRegisterAll(t *testing.T) {
	flags := &Flags{}
	app := RegisterAll(&cli.Command{Name: AppName, Flags: GlobalFlags(flags)}, flags, tui.BuildInfo{})

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"tui", "run", "quick", "config", "doctor"}, names)
	assert.NotNil(t, app.Action)
}

func TestValidatesConfigAtStartup(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"", true},
		{"tui", true},
		{"run", true},
		{"config", false},
		{"doctor", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatesConfigAtStartup(tt.arg))
		})
	}
}
