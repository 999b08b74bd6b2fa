package tui

// BuildInfo holds build-time metadata shown in the help overlay.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) title() string {
	if b.Version == "" {
		return "dayplan"
	}
	return "dayplan " + b.Version
}
