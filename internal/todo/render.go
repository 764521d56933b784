package todo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TimeLayout is the display layout of a task's creation time (DD/MM/YYYY HH:MM).
const TimeLayout = "02/01/2006 15:04"

// Renderer formats tasks and lists for display.
type Renderer struct {
	name     lipgloss.Style
	created  lipgloss.Style
	location *time.Location
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithLocation formats creation times in loc instead of local time.
func WithLocation(loc *time.Location) RenderOption {
	return func(r *Renderer) {
		if loc != nil {
			r.location = loc
		}
	}
}

// NewRenderer returns a renderer for output written to w. When color is
// false every style degrades to plain text.
func NewRenderer(w io.Writer, color bool, opts ...RenderOption) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		if lr.ColorProfile() == termenv.Ascii {
			lr.SetColorProfile(termenv.ANSI)
		}
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	r := &Renderer{
		name: lr.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true).
			Underline(true).
			TabWidth(lipgloss.NoTabConversion),
		created: lr.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true).
			TabWidth(lipgloss.NoTabConversion),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Task renders a task as its name and description, then its creation
// time on an indented second line.
func (r *Renderer) Task(t Task) string {
	created := t.CreatedAt.In(r.location).Format(TimeLayout)
	return fmt.Sprintf("%s: %s\n\t%s", r.name.Render(t.Name), t.Description, r.created.Render(created))
}

// Entry renders a task prefixed with its positional index.
func (r *Renderer) Entry(index int, t Task) string {
	return fmt.Sprintf("%d) %s", index, r.Task(t))
}

// List renders every task with its index, separated by blank lines.
// An empty list renders as the empty string.
func (r *Renderer) List(l *List) string {
	entries := make([]string, 0, l.Len())
	for i, t := range l.Tasks {
		entries = append(entries, r.Entry(i, t))
	}
	return strings.Join(entries, "\n\n")
}
