package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialList(items ...Item) *List {
	return NewList(WithIDSource(&SequentialIDs{}), WithItems(items...))
}

func TestList_Add(t *testing.T) {
	t.Run("rejects blank text", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t\n"} {
			l := NewList()
			_, ok := l.Add(text)
			assert.False(t, ok, "Add(%q)", text)
			assert.Equal(t, 0, l.Len())
		}
	})

	t.Run("prepends new incomplete item", func(t *testing.T) {
		l := sequentialList(Item{ID: 99, Text: "older"})

		item, ok := l.Add("buy milk")
		require.True(t, ok)

		items := l.Items()
		require.Len(t, items, 2)
		assert.Equal(t, item, items[0])
		assert.Equal(t, "buy milk", items[0].Text)
		assert.False(t, items[0].IsComplete)
		assert.Equal(t, ID(1), items[0].ID)
		assert.Equal(t, "older", items[1].Text)
	})

	t.Run("keeps text untrimmed", func(t *testing.T) {
		l := NewList()
		item, ok := l.Add("  padded ")
		require.True(t, ok)
		assert.Equal(t, "  padded ", item.Text)
	})

	t.Run("default source stays in range", func(t *testing.T) {
		l := NewList()
		for range 200 {
			item, ok := l.Add("x")
			require.True(t, ok)
			assert.GreaterOrEqual(t, int(item.ID), 0)
			assert.Less(t, int(item.ID), DefaultMaxID)
		}
	})

	t.Run("length counts accepted adds", func(t *testing.T) {
		inputs := []string{"a", "", "b", "  ", "c", "\t", "d"}
		l := NewList()
		accepted := 0
		for _, in := range inputs {
			if _, ok := l.Add(in); ok {
				accepted++
			}
		}
		assert.Equal(t, 4, accepted)
		assert.Equal(t, accepted, l.Len())
	})
}

func TestList_Update(t *testing.T) {
	seed := []Item{
		{ID: 3, Text: "c"},
		{ID: 2, Text: "b", IsComplete: true},
		{ID: 1, Text: "a"},
	}

	t.Run("blank text is a no-op", func(t *testing.T) {
		l := sequentialList(seed...)
		assert.False(t, l.Update(2, Item{Text: ""}))
		assert.False(t, l.Update(2, Item{Text: "   "}))
		assert.Equal(t, seed, l.Items())
	})

	t.Run("replaces only matching item in place", func(t *testing.T) {
		l := sequentialList(seed...)
		assert.True(t, l.Update(2, Item{ID: 4242, Text: "b2"}))

		items := l.Items()
		require.Len(t, items, 3)
		assert.Equal(t, seed[0], items[0])
		assert.Equal(t, Item{ID: 2, Text: "b2"}, items[1])
		assert.Equal(t, seed[2], items[2])
	})

	t.Run("unknown id leaves state unchanged", func(t *testing.T) {
		l := sequentialList(seed...)
		assert.False(t, l.Update(7, Item{Text: "zzz"}))
		assert.Equal(t, seed, l.Items())
	})
}

func TestList_Remove(t *testing.T) {
	t.Run("removes present id", func(t *testing.T) {
		l := sequentialList(Item{ID: 2, Text: "b"}, Item{ID: 1, Text: "a"})
		assert.True(t, l.Remove(2))
		assert.Equal(t, 1, l.Len())
		_, found := l.Get(2)
		assert.False(t, found)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		l := sequentialList(Item{ID: 1, Text: "a"})
		assert.False(t, l.Remove(5))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("colliding ids are all removed", func(t *testing.T) {
		l := sequentialList(Item{ID: 1, Text: "x"}, Item{ID: 2, Text: "y"}, Item{ID: 1, Text: "z"})
		assert.True(t, l.Remove(1))
		assert.Equal(t, []Item{{ID: 2, Text: "y"}}, l.Items())
	})
}

func TestList_ToggleComplete(t *testing.T) {
	t.Run("twice restores original", func(t *testing.T) {
		l := sequentialList(Item{ID: 1, Text: "a"}, Item{ID: 2, Text: "b"})

		require.True(t, l.ToggleComplete(1))
		item, _ := l.Get(1)
		assert.True(t, item.IsComplete)

		require.True(t, l.ToggleComplete(1))
		item, _ = l.Get(1)
		assert.False(t, item.IsComplete)

		other, _ := l.Get(2)
		assert.False(t, other.IsComplete)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		seed := []Item{{ID: 1, Text: "a"}}
		l := sequentialList(seed...)
		assert.False(t, l.ToggleComplete(9))
		assert.Equal(t, seed, l.Items())
	})

	t.Run("does not mutate earlier snapshots", func(t *testing.T) {
		l := sequentialList(Item{ID: 1, Text: "a"})
		before := l.Items()
		l.ToggleComplete(1)
		assert.False(t, before[0].IsComplete)
	})

	t.Run("id zero is addressable", func(t *testing.T) {
		l := sequentialList(Item{ID: 0, Text: "zero"})
		assert.True(t, l.ToggleComplete(0))
		item, ok := l.Get(0)
		require.True(t, ok)
		assert.True(t, item.IsComplete)
	})
}

func TestList_Scenario(t *testing.T) {
	l := NewList()

	a, ok := l.Add("A")
	require.True(t, ok)
	b, ok := l.Add("B")
	require.True(t, ok)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Text)
	assert.Equal(t, "A", items[1].Text)

	if a.ID == b.ID {
		t.Skip("random ids collided")
	}

	l.ToggleComplete(a.ID)
	gotA, _ := l.Get(a.ID)
	gotB, _ := l.Get(b.ID)
	assert.True(t, gotA.IsComplete)
	assert.False(t, gotB.IsComplete)

	l.Remove(b.ID)
	items = l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)

	l.Update(a.ID, Item{Text: "A2", IsComplete: gotA.IsComplete})
	items = l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "A2", items[0].Text)
	assert.Equal(t, a.ID, items[0].ID)
}
