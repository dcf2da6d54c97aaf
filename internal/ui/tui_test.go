package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/gotask/internal/render"
	"github.com/nibzard/gotask/internal/store"
	"github.com/nibzard/gotask/internal/todo"
	"github.com/nibzard/gotask/internal/tracker"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestModel(t *testing.T, opts ...Option) (*Model, *store.File) {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "tasks.json"))
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sel := &todo.Selector{
		Weights: todo.DefaultWeights(),
		Rand:    fixedRand(0.99),
		Now:     func() time.Time { return now },
	}
	tr := tracker.New(s, tracker.WithSelector(sel))

	seed := []struct {
		project string
		task    todo.Task
	}{
		{"work", todo.NewTask("fix bug", todo.WithPriority(todo.Urgent))},
		{"work", todo.NewTask("write report")},
		{"home", todo.NewTask("dishes", todo.WithPriority(todo.High))},
	}
	for _, sd := range seed {
		if err := tr.AddTask(sd.project, sd.task); err != nil {
			t.Fatal(err)
		}
	}

	r := render.New(&bytes.Buffer{}, render.ColorNever)
	r.Now = func() time.Time { return now }
	m := NewModel(tr, r, opts...)
	m.Init()
	return m, s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialViewIsSelective(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "selected tasks") {
		t.Errorf("expected selective title:\n%s", view)
	}
	if !strings.Contains(view, "fix bug") || !strings.Contains(view, "dishes") {
		t.Errorf("urgent and high tasks should always show:\n%s", view)
	}
	if strings.Contains(view, "write report") {
		t.Errorf("normal task should be skipped with a high draw:\n%s", view)
	}
	if !strings.Contains(view, "> [0]: dishes") {
		t.Errorf("cursor should start on the first row:\n%s", view)
	}
}

func TestToggleShowsAll(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRune('a'))

	view := m.View()
	if !strings.Contains(view, "all tasks") || !strings.Contains(view, "[1]: write report") {
		t.Errorf("expected full listing:\n%s", view)
	}

	m.Update(keyRune('a'))
	if strings.Contains(m.View(), "write report") {
		t.Error("second toggle should return to the selective listing")
	}
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, WithShowAll(true))
	if len(m.rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(m.rows))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should not move above the first row, got %d", m.cursor)
	}
	for i := 0; i < 5; i++ {
		m.Update(keyRune('j'))
	}
	if m.cursor != 2 {
		t.Errorf("cursor should stop on the last row, got %d", m.cursor)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("cursor: got %d, want 1", m.cursor)
	}
}

func TestCompleteRemovesTask(t *testing.T) {
	m, s := newTestModel(t, WithShowAll(true))

	// Rows: home/dishes, work/fix bug, work/write report.
	m.Update(keyRune('j'))
	m.Update(keyRune('x'))

	if m.err != nil {
		t.Fatalf("complete failed: %v", m.err)
	}
	if !strings.Contains(m.status, "fix bug") {
		t.Errorf("status: got %q", m.status)
	}

	c, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	work := c.Find("work")
	if work == nil || work.Len() != 1 || work.Tasks[0].Description != "write report" {
		t.Errorf("work after complete: %+v", work)
	}
	if len(m.rows) != 2 {
		t.Errorf("rows after complete: got %d, want 2", len(m.rows))
	}
}

func TestCompleteLastTaskEmptiesView(t *testing.T) {
	m, _ := newTestModel(t, WithShowAll(true))
	for i := 0; i < 3; i++ {
		m.Update(keyRune('x'))
	}
	if len(m.rows) != 0 || m.cursor != 0 {
		t.Errorf("rows %d cursor %d, want empty", len(m.rows), m.cursor)
	}
	if !strings.Contains(m.View(), "No tasks.") {
		t.Errorf("expected empty view:\n%s", m.View())
	}
	// Nothing left to complete.
	m.Update(keyRune('x'))
	if m.err != nil {
		t.Errorf("complete on empty view: %v", m.err)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	short := m.View()
	m.Update(keyRune('?'))
	full := m.View()
	if short == full {
		t.Error("help toggle should change the view")
	}
	if !strings.Contains(full, "reroll") {
		t.Errorf("full help should list reroll:\n%s", full)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a TTY")
	}
}
