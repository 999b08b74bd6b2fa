package printer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
)

const defaultWrap = 80

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`#`, `\#`,
)

// Markdown renders items as a GitHub task list under a level one heading.
// Completed items are checked and struck through.
func Markdown(heading string, items []todo.Item) string {
	var b strings.Builder
	if heading != "" {
		b.WriteString("# ")
		b.WriteString(mdEscaper.Replace(heading))
		b.WriteString("\n\n")
	}

	if len(items) == 0 {
		b.WriteString("_Nothing planned yet._\n")
		return b.String()
	}

	for _, it := range items {
		text := mdEscaper.Replace(it.Text)
		if it.IsComplete {
			fmt.Fprintf(&b, "- [x] ~~%s~~\n", text)
			continue
		}
		fmt.Fprintf(&b, "- [ ] %s\n", text)
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal using the active theme.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// List prints items as markdown. plain skips terminal rendering and writes
// the raw markdown.
func (p *Printer) List(heading string, items []todo.Item, plain bool) error {
	md := Markdown(heading, items)
	if plain {
		_, err := fmt.Fprint(p.out, md)
		return err
	}

	rendered, err := RenderMarkdown(md, defaultWrap)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.out, rendered)
	return err
}
