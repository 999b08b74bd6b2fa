package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/pkg/tuitest"
)

type recorder struct {
	got []todo.Item
}

func (r *recorder) submit(item todo.Item) {
	r.got = append(r.got, item)
}

func TestNewCreate(t *testing.T) {
	m := NewCreate(nil)
	assert.Equal(t, ModeCreate, m.Mode())
	assert.Empty(t, m.Value())
	assert.False(t, m.Focused())
}

func TestNewEdit_PrefillsText(t *testing.T) {
	m := NewEdit(todo.Item{ID: 0, Text: "walk dog", IsComplete: true}, nil)
	assert.Equal(t, ModeEdit, m.Mode())
	assert.Equal(t, "walk dog", m.Value())
	assert.Equal(t, todo.ID(0), m.Bound().ID)
}

func TestUpdate_IgnoredWhenBlurred(t *testing.T) {
	rec := &recorder{}
	m := NewCreate(rec.submit)

	m, cmd := m.Update(tuitest.KeyPress('a'))
	assert.Nil(t, cmd)
	assert.Empty(t, m.Value())

	m.Update(tuitest.KeyEnter())
	assert.Empty(t, rec.got, "blurred editor must not submit")
}

func TestUpdate_TypingUpdatesValue(t *testing.T) {
	m := NewCreate(nil)
	m.Focus()

	for _, msg := range tuitest.Type("milk") {
		m, _ = m.Update(msg)
	}
	assert.Equal(t, "milk", m.Value())
}

func TestSubmit_CreateMode(t *testing.T) {
	rec := &recorder{}
	m := NewCreate(rec.submit)
	m.Focus()
	m.input.SetValue("buy milk")

	m, _ = m.Update(tuitest.KeyEnter())

	require.Len(t, rec.got, 1)
	assert.Equal(t, todo.Item{Text: "buy milk"}, rec.got[0])
	assert.Empty(t, m.Value(), "input clears after submit")
}

func TestSubmit_BlankStillForwarded(t *testing.T) {
	rec := &recorder{}
	m := NewCreate(rec.submit)
	m.Focus()

	m.Update(tuitest.KeyEnter())

	require.Len(t, rec.got, 1)
	assert.Empty(t, rec.got[0].Text)
}

func TestSubmit_EditModeCarriesBinding(t *testing.T) {
	rec := &recorder{}
	m := NewEdit(todo.Item{ID: 17, Text: "old", IsComplete: true}, rec.submit)
	m.Focus()
	m.input.SetValue("new")

	m.Update(tuitest.KeyEnter())

	require.Len(t, rec.got, 1)
	assert.Equal(t, todo.Item{ID: 17, Text: "new", IsComplete: true}, rec.got[0])
}

func TestFocusAndBlur(t *testing.T) {
	m := NewCreate(nil)

	cmd := m.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, m.Focused())

	m.Blur()
	assert.False(t, m.Focused())
}

func TestView(t *testing.T) {
	t.Run("create labels", func(t *testing.T) {
		view := tuitest.StripANSI(NewCreate(nil).View())
		assert.Contains(t, view, "Add Todo")
		assert.Contains(t, view, "Add a todo")
	})

	t.Run("edit labels", func(t *testing.T) {
		view := tuitest.StripANSI(NewEdit(todo.Item{Text: "x"}, nil).View())
		assert.Contains(t, view, "Update")
	})

	t.Run("changes with focus", func(t *testing.T) {
		m := NewCreate(nil)
		blurred := m.View()
		m.Focus()
		assert.NotEqual(t, blurred, m.View())
	})
}
