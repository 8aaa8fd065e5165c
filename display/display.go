// Package display renders namespace contents and change events for humans.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jacentio/canopy/store"
)

// Printer writes namespace views to a writer, optionally in colour.
type Printer struct {
	w      io.Writer
	level  *color.Color
	name   *color.Color
	value  *color.Color
	event  *color.Color
	failed error
}

// NewPrinter creates a Printer. Colour is enabled only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		w:     w,
		level: color.New(color.Bold),
		name:  color.New(color.FgCyan),
		value: color.New(color.FgGreen),
		event: color.New(color.FgYellow),
	}
	p.SetColor(IsTerminal(w))
	return p
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor forces colour on or off.
func (p *Printer) SetColor(enabled bool) {
	for _, c := range []*color.Color{p.level, p.name, p.value, p.event} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.failed
}

func (p *Printer) printf(format string, args ...any) {
	if p.failed != nil {
		return
	}
	_, p.failed = fmt.Fprintf(p.w, format, args...)
}

// Levels writes a level-order dump, one line per node.
func Levels[T any](p *Printer, levels []store.Level[T]) error {
	if len(levels) == 0 {
		p.printf("(empty)\n")
		return p.Err()
	}
	for _, l := range levels {
		p.printf("%s\n", p.level.Sprintf("Level %d:", l.Number))
		for _, n := range l.Nodes {
			p.printf("  %s = %s\n", p.name.Sprint(n.Path), p.value.Sprint(fmt.Sprint(n.Value)))
		}
	}
	return p.Err()
}

// Children writes the direct children of the node named parent on one line.
func Children[T any](p *Printer, parent string, children []store.NodeView[T]) error {
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = p.name.Sprint(c.Name)
	}
	p.printf("Children of %s: %s\n", p.name.Sprint(parent), strings.Join(names, " "))
	return p.Err()
}

// Listener returns a handler that prints every event it receives.
func Listener[T any](p *Printer) store.Handler[T] {
	return func(e store.Event[T]) {
		p.printf("Event : %s Node Name %q Node Value %q\n",
			p.event.Sprintf("%q", string(e.Kind)),
			e.Name,
			fmt.Sprint(e.Value),
		)
	}
}
