package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dayplan/internal/core/config"
)

type staticCheck struct {
	name  string
	items []CheckItem
}

func (s staticCheck) Name() string { return s.name }

func (s staticCheck) Run(context.Context) Result {
	return Result{Name: s.name, Items: s.items}
}

func TestRunAllAndSummary(t *testing.T) {
	results := RunAll(context.Background(), []Check{
		staticCheck{"a", []CheckItem{{Label: "x", Status: StatusPass}, {Label: "y", Status: StatusWarn}}},
		staticCheck{"b", []CheckItem{{Label: "z", Status: StatusFail}}},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestConfigCheck(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg := config.DefaultConfig()
		result := NewConfigCheck(filepath.Join(t.TempDir(), "nope.yaml"), &cfg).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, "not found, using defaults", result.Items[0].Detail)
		assert.Equal(t, StatusPass, result.Items[1].Status)
	})

	t.Run("field errors become items", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.TUI.Theme = "neon"
		cfg.IDs.Max = 0

		result := NewConfigCheck("", &cfg).Run(context.Background())

		labels := make([]string, 0, len(result.Items))
		for _, item := range result.Items[1:] {
			assert.Equal(t, StatusFail, item.Status)
			labels = append(labels, item.Label)
		}
		assert.ElementsMatch(t, []string{"tui.theme", "ids.max"}, labels)
	})
}

func TestLogFileCheck(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		status Status
	}{
		{
			name:   "unset",
			path:   func(*testing.T) string { return "" },
			status: StatusWarn,
		},
		{
			name:   "creates parent dirs",
			path:   func(t *testing.T) string { return filepath.Join(t.TempDir(), "nested", "dayplan.log") },
			status: StatusPass,
		},
		{
			name: "path is a directory",
			path: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "logs")
				require.NoError(t, os.Mkdir(dir, 0o755))
				return dir
			},
			status: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewLogFileCheck(tt.path(t)).Run(context.Background())
			require.Len(t, result.Items, 1)
			assert.Equal(t, tt.status, result.Items[0].Status)
		})
	}
}

func TestTerminalCheck(t *testing.T) {
	orig := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = orig })

	stdout := int(os.Stdout.Fd())
	isTerminalFunc = func(fd int) bool { return fd == stdout }

	result := NewTerminalCheck().Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, "stdin", result.Items[0].Label)
	assert.Equal(t, StatusWarn, result.Items[0].Status)
	assert.Equal(t, "stdout", result.Items[1].Label)
	assert.Equal(t, StatusPass, result.Items[1].Status)
}
