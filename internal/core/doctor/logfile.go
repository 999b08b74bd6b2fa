package doctor

import (
	"context"
	"os"
	"path/filepath"
)

// LogFileCheck verifies that the log file can be opened for appending.
type LogFileCheck struct {
	path string
}

// NewLogFileCheck creates a log file check.
func NewLogFileCheck(path string) *LogFileCheck {
	return &LogFileCheck{path: path}
}

func (c *LogFileCheck) Name() string {
	return "Logging"
}

func (c *LogFileCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.path == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "log file",
			Status: StatusWarn,
			Detail: "no log file configured, logs are discarded",
		})
		return result
	}

	if err := c.tryAppend(); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "log file",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "log file",
		Status: StatusPass,
		Detail: c.path,
	})
	return result
}

func (c *LogFileCheck) tryAppend() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
