package tui

// Focus is the UI's tri-state: the add form is active, the list is being
// browsed, or one row is being edited.
type Focus int

const (
	FocusCreating Focus = iota
	FocusBrowsing
	FocusEditing
)

// String returns the lowercase name of the focus state.
func (f Focus) String() string {
	switch f {
	case FocusCreating:
		return "creating"
	case FocusBrowsing:
		return "browsing"
	case FocusEditing:
		return "editing"
	default:
		return "unknown"
	}
}
