package rows

import "github.com/colonyops/dayplan/internal/core/todo"

// Cursor is the edit cursor: either idle or editing exactly one item. The
// zero value is idle. Whether an edit is in progress is carried by its own
// discriminant so any id, including 0, can be edited.
type Cursor struct {
	editing bool
	id      todo.ID
}

// IdleCursor returns a cursor with no edit in progress.
func IdleCursor() Cursor {
	return Cursor{}
}

// EditCursor returns a cursor editing id. The pending text lives in the
// editor bound to it.
func EditCursor(id todo.ID) Cursor {
	return Cursor{editing: true, id: id}
}

// IsEditing reports whether an edit is in progress.
func (c Cursor) IsEditing() bool { return c.editing }

// ID returns the id being edited. Only meaningful when IsEditing is true.
func (c Cursor) ID() todo.ID { return c.id }
