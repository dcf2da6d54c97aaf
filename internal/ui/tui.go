// Package ui provides the interactive terminal view of the task collection.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/gotask/internal/render"
	"github.com/nibzard/gotask/internal/tracker"
)

// ErrNotTTY is returned by Run when the output is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Toggle   key.Binding
	Reroll   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x", "complete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all/selective"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "reroll"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Toggle, k.Reroll, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Complete},
		{k.Toggle, k.Reroll},
		{k.Help, k.Quit},
	}
}

// row is one selectable task line.
type row struct {
	project string
	entry   tracker.Entry
}

// Model is the bubbletea model for the task view.
type Model struct {
	tracker  *tracker.Tracker
	render   *render.Renderer
	keys     keyMap
	help     help.Model
	showAll  bool
	listings []tracker.Listing
	rows     []row
	cursor   int
	status   string
	err      error
}

// Option configures the Model.
type Option func(*Model)

// WithShowAll starts in full listing mode instead of the selective one.
func WithShowAll(enabled bool) Option {
	return func(m *Model) {
		m.showAll = enabled
	}
}

// NewModel returns a model over t that styles tasks with r.
func NewModel(t *tracker.Tracker, r *render.Renderer, opts ...Option) *Model {
	m := &Model{
		tracker: t,
		render:  r,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the interactive view on the terminal.
func Run(ctx context.Context, t *tracker.Tracker, r *render.Renderer, opts ...Option) error {
	if !IsTTY(os.Stdout) {
		return ErrNotTTY
	}
	program := tea.NewProgram(NewModel(t, r, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.showAll = !m.showAll
			m.status = ""
			m.refresh()
		case key.Matches(msg, m.keys.Reroll):
			m.status = ""
			m.refresh()
		case key.Matches(msg, m.keys.Complete):
			m.complete()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// complete removes the task under the cursor.
func (m *Model) complete() {
	if m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	task, err := m.tracker.RemoveTask(r.project, r.entry.Index)
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("Completed %q in %s", task.Description, r.project)
	m.refresh()
}

func (m *Model) refresh() {
	var (
		listings []tracker.Listing
		err      error
	)
	if m.showAll {
		listings, err = m.tracker.ListAll("")
	} else {
		listings, err = m.tracker.List("")
	}
	if err != nil {
		m.err = err
		m.listings = nil
		m.rows = nil
		return
	}

	m.err = nil
	m.listings = listings
	m.rows = m.rows[:0]
	for _, l := range listings {
		for _, e := range l.Entries {
			m.rows = append(m.rows, row{project: l.Project, entry: e})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b, m.showAll)

	if m.err != nil {
		b.WriteString("Error:\n")
		b.WriteString("  " + m.err.Error() + "\n\n")
	}

	if len(m.listings) == 0 && m.err == nil {
		b.WriteString("  No tasks.\n\n")
	}

	i := 0
	for _, l := range m.listings {
		b.WriteString(m.render.Header(l.Project, l.Total) + "\n")
		for _, e := range l.Entries {
			marker := " "
			if i == m.cursor {
				marker = ">"
			}
			fmt.Fprintf(&b, "%s [%d]: %s\n", marker, e.Index, m.render.Task(e.Task))
			i++
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}
	b.WriteString(m.help.View(m.keys) + "\n")
	return b.String()
}

func writeTitle(b *strings.Builder, showAll bool) {
	title := "gotask"
	if showAll {
		title += " (all tasks)"
	} else {
		title += " (selected tasks)"
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
