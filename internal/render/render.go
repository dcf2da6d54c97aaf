// Package render formats tasks and listings for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nibzard/gotask/internal/todo"
	"github.com/nibzard/gotask/internal/tracker"
)

// ColorMode controls whether output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never. An empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Renderer styles tasks by priority.
type Renderer struct {
	plain  bool
	styles map[todo.Priority]lipgloss.Style
	none   lipgloss.Style
	header lipgloss.Style
	Now    func() time.Time
}

// New returns a renderer for output written to w.
func New(w io.Writer, mode ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(w)
	plain := false
	switch mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case ColorNever:
		plain = true
	default:
		if os.Getenv("NO_COLOR") != "" || lr.ColorProfile() == termenv.Ascii {
			plain = true
		}
	}
	if plain {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		plain: plain,
		styles: map[todo.Priority]lipgloss.Style{
			todo.Urgent: lr.NewStyle().Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("1")),
			todo.High:   lr.NewStyle().Foreground(lipgloss.Color("1")),
			todo.Normal: lr.NewStyle().Foreground(lipgloss.Color("3")),
			todo.Low:    lr.NewStyle().Foreground(lipgloss.Color("2")),
			todo.Note:   lr.NewStyle().Foreground(lipgloss.Color("6")),
		},
		none:   lr.NewStyle().Bold(true),
		header: lr.NewStyle().Bold(true).Underline(true),
		Now:    time.Now,
	}
}

// Plain reports whether the renderer emits no escape sequences.
func (r *Renderer) Plain() bool {
	return r.plain
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Description returns the task description styled for its priority.
func (r *Renderer) Description(t todo.Task) string {
	if r.plain {
		return t.Description
	}
	if t.Priority == nil {
		return r.none.Render(t.Description)
	}
	return r.styles[*t.Priority].Render(t.Description)
}

// Task returns the styled description followed by the deadline, if any.
func (r *Renderer) Task(t todo.Task) string {
	s := r.Description(t)
	if t.Deadline != nil {
		s += " [" + Deadline(*t.Deadline, r.now()) + "]"
	}
	return s
}

// Header returns the "name: N tasks" line of a project.
func (r *Renderer) Header(name string, count int) string {
	line := fmt.Sprintf("%s: %d %s", name, count, plural(count, "task"))
	if r.plain {
		return line
	}
	return r.header.Render(line)
}

// Listings writes each listing as a header followed by its indexed tasks.
func (r *Renderer) Listings(w io.Writer, listings []tracker.Listing) error {
	for i, l := range listings {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.Header(l.Project, l.Total)); err != nil {
			return err
		}
		for _, e := range l.Entries {
			if _, err := fmt.Fprintf(w, "  [%d]: %s\n", e.Index, r.Task(e.Task)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Summaries writes one "name: N tasks" line per project.
func (r *Renderer) Summaries(w io.Writer, summaries []tracker.Summary) error {
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%s: %d %s\n", s.Name, s.Tasks, plural(s.Tasks, "task")); err != nil {
			return err
		}
	}
	return nil
}

// Deadline describes deadline relative to now: "in 3 days", "overdue by 1 hour".
// Differences below a quarter hour read as "moments".
func Deadline(deadline, now time.Time) string {
	diff := deadline.Sub(now)
	prefix := "in"
	if diff < 0 {
		prefix = "overdue by"
		diff = -diff
	}
	return prefix + " " + span(diff)
}

func span(d time.Duration) string {
	units := []struct {
		name string
		size time.Duration
		min  int64
	}{
		{"week", todo.Week, 1},
		{"day", 24 * time.Hour, 1},
		{"hour", time.Hour, 1},
		{"minute", time.Minute, 16},
	}
	for _, u := range units {
		if n := int64(d / u.size); n >= u.min {
			return fmt.Sprintf("%d %s", n, plural(int(n), u.name))
		}
	}
	return "moments"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
