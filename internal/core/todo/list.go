package todo

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/dayplan/internal/core/validate"
)

// List is the authoritative ordered sequence of items. New items are
// prepended. Every mutation replaces the backing slice so slices previously
// returned by Items are never modified.
//
// Operations never fail: blank text and unknown ids are silent no-ops. The
// returned bool reports whether the state changed.
//
// A List is not safe for concurrent use.
type List struct {
	items []Item
	ids   IDSource
	log   zerolog.Logger
}

// Option configures a List.
type Option func(*List)

// WithIDSource sets the id generator. The default is RandomIDs over [0, DefaultMaxID).
func WithIDSource(src IDSource) Option {
	return func(l *List) {
		if src != nil {
			l.ids = src
		}
	}
}

// WithLogger sets the logger used to report rejected and applied operations.
func WithLogger(log zerolog.Logger) Option {
	return func(l *List) {
		l.log = log
	}
}

// WithItems seeds the list, newest first.
func WithItems(items ...Item) Option {
	return func(l *List) {
		l.items = slices.Clone(items)
	}
}

// NewList creates an empty list.
func NewList(opts ...Option) *List {
	l := &List{
		ids: &RandomIDs{Max: DefaultMaxID},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Items returns a copy of the current items in display order.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the first item with the given id.
func (l *List) Get(id ID) (Item, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Item{}, false
	}
	return l.items[idx], true
}

// Add creates an item from text and prepends it to the list.
func (l *List) Add(text string) (Item, bool) {
	if err := validate.ItemText(text); err != nil {
		l.log.Debug().Err(err).Msg("add rejected")
		return Item{}, false
	}

	item := Item{
		ID:   l.ids.NextID(l.contains),
		Text: text,
	}

	next := make([]Item, 0, len(l.items)+1)
	next = append(next, item)
	next = append(next, l.items...)
	l.items = next

	l.log.Debug().Stringer("id", item.ID).Int("count", len(l.items)).Msg("item added")
	return item, true
}

// Update replaces every item matching id with item, keeping its position and
// its id.
func (l *List) Update(id ID, item Item) bool {
	if err := validate.ItemText(item.Text); err != nil {
		l.log.Debug().Err(err).Stringer("id", id).Msg("update rejected")
		return false
	}

	item.ID = id
	return l.replace(id, func(Item) Item { return item }, "item updated")
}

// Remove drops every item matching id.
func (l *List) Remove(id ID) bool {
	if !l.contains(id) {
		l.log.Debug().Stringer("id", id).Msg("remove ignored, no such item")
		return false
	}

	next := make([]Item, 0, len(l.items)-1)
	for _, it := range l.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	l.items = next

	l.log.Debug().Stringer("id", id).Int("count", len(l.items)).Msg("item removed")
	return true
}

// ToggleComplete flips the completion flag of every item matching id.
func (l *List) ToggleComplete(id ID) bool {
	return l.replace(id, Item.Toggled, "item toggled")
}

func (l *List) replace(id ID, fn func(Item) Item, msg string) bool {
	if !l.contains(id) {
		l.log.Debug().Stringer("id", id).Msg("no such item")
		return false
	}

	next := make([]Item, len(l.items))
	for i, it := range l.items {
		if it.ID == id {
			it = fn(it)
		}
		next[i] = it
	}
	l.items = next

	l.log.Debug().Stringer("id", id).Msg(msg)
	return true
}

func (l *List) index(id ID) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
}

func (l *List) contains(id ID) bool {
	return l.index(id) >= 0
}
