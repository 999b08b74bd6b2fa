// Package printer writes styled CLI output for the non-interactive commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/dayplan/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to out and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Printer. A nil writer falls back to the matching std stream.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut}
}

// WithPrinter attaches p to ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer attached to ctx, or one that writes to stdout and
// stderr when none is attached.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(nil, nil)
}

// Writer returns the output writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.SuccessStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.InfoStyle.Render("•")+" "+fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.errOut, styles.WarningStyle.Render("!")+" "+fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.errOut, styles.ErrorStyle.Render("✗")+" "+fmt.Sprintf(format, args...))
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(p.out, fmt.Sprintf(format, args...))
}

func (p *Printer) line(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
