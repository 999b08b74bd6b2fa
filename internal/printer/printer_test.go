package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/pkg/tuitest"
)

func TestCtx(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)

	assert.Same(t, p, Ctx(WithPrinter(context.Background(), p)))
	assert.NotNil(t, Ctx(context.Background()), "falls back to std streams")
}

func TestPrinter_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Successf("saved %d", 2)
	p.Infof("note")
	p.Printf("plain %s", "line")
	p.Warnf("careful")
	p.Errorf("broken")

	stdout := tuitest.StripANSI(out.String())
	assert.Contains(t, stdout, "✓ saved 2")
	assert.Contains(t, stdout, "• note")
	assert.Contains(t, stdout, "plain line")

	stderr := tuitest.StripANSI(errOut.String())
	assert.Contains(t, stderr, "! careful")
	assert.Contains(t, stderr, "✗ broken")
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		items   []todo.Item
		want    string
	}{
		{
			name:    "empty",
			heading: "Today",
			want:    "# Today\n\n_Nothing planned yet._\n",
		},
		{
			name:    "mixed",
			heading: "Today",
			items: []todo.Item{
				{ID: 2, Text: "B"},
				{ID: 1, Text: "A", IsComplete: true},
			},
			want: "# Today\n\n- [ ] B\n- [x] ~~A~~\n",
		},
		{
			name:  "no heading escapes text",
			items: []todo.Item{{Text: "ship *v2* [now]"}},
			want:  "- [ ] ship \\*v2\\* \\[now\\]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Markdown(tt.heading, tt.items))
		})
	}
}

func TestPrinter_ListPlain(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)

	require.NoError(t, p.List("Today", []todo.Item{{Text: "A"}}, true))
	assert.Equal(t, "# Today\n\n- [ ] A\n", out.String())
}

func TestPrinter_ListRendered(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)

	items := []todo.Item{{Text: "walk dog"}, {Text: "buy milk", IsComplete: true}}
	require.NoError(t, p.List("Today", items, false))

	rendered := tuitest.StripANSI(out.String())
	assert.Contains(t, rendered, "Today")
	assert.Contains(t, rendered, "walk dog")
	assert.Contains(t, rendered, "buy milk")
	assert.Contains(t, rendered, "[ ]")
	assert.Contains(t, rendered, "[✓]")
	assert.NotContains(t, rendered, "~~", "strikethrough is styled, not literal")
}
