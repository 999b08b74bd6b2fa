package styles

var (
	IconDelete    = "✕"
	IconEdit      = "✎"
	IconChecked   = "●"
	IconUnchecked = "○"
	IconCursor    = "┃"
)
