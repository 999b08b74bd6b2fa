// Package todo defines the to-do item domain model and the in-memory list that owns it.
package todo

import "strconv"

// ID identifies an item within a List. IDs are not guaranteed to be unique
// unless the List is configured with a collision-checked or sequential source.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Item represents a single to-do entry.
type Item struct {
	ID         ID     `json:"id"`
	Text       string `json:"text"`
	IsComplete bool   `json:"is_complete"`
}

// Toggled returns a copy of the item with its completion flag flipped.
func (i Item) Toggled() Item {
	i.IsComplete = !i.IsComplete
	return i
}
