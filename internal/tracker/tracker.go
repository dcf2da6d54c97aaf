// Package tracker runs one command against the stored task collection.
//
// Every mutating method is a single transaction: load the whole collection,
// apply the change, and save the whole collection once. A method that fails
// returns before saving, so the stored file is left as it was.
package tracker

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/gotask/internal/store"
	"github.com/nibzard/gotask/internal/todo"
)

// Store loads and saves the full collection.
type Store interface {
	Load() (todo.Collection, error)
	Save(todo.Collection) error
}

// Entry is a task shown in a listing together with its index in the project.
type Entry struct {
	Index int
	Task  todo.Task
}

// Listing is the visible part of one project.
type Listing struct {
	Project string
	Total   int // tasks in the project, shown or not
	Entries []Entry
}

// Summary describes a project without its tasks.
type Summary struct {
	Name  string
	Tasks int
}

// Tracker applies commands to the collection held by a Store.
type Tracker struct {
	store    Store
	selector *todo.Selector
	logger   *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSelector sets the selector used by List.
func WithSelector(s *todo.Selector) Option {
	return func(t *Tracker) {
		t.selector = s
	}
}

// WithLogger sets the logger for mutation events.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// New returns a Tracker over s. Without options it uses the default
// selection weights and discards log output.
func New(s Store, opts ...Option) *Tracker {
	t := &Tracker{store: s}
	for _, opt := range opts {
		opt(t)
	}
	if t.selector == nil {
		t.selector = todo.NewSelector(todo.DefaultWeights())
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

// load returns the stored collection. A store that does not exist yet is an
// empty collection.
func (t *Tracker) load() (todo.Collection, error) {
	c, err := t.store.Load()
	if errors.Is(err, store.ErrNotFound) {
		t.logger.Info("No task file yet, starting empty")
		return todo.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	c.Normalize()
	return c, nil
}

func (t *Tracker) save(c todo.Collection) error {
	if err := t.store.Save(c); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// List returns the tasks chosen by the selective filter. An empty scope
// covers every project. Indices in the result are positions in the full
// project, so they can be passed straight to RemoveTask or EditTask.
func (t *Tracker) List(scope string) ([]Listing, error) {
	return t.list(scope, t.selector.Choose)
}

// ListAll returns every task in scope.
func (t *Tracker) ListAll(scope string) ([]Listing, error) {
	return t.list(scope, func(todo.Task) bool { return true })
}

func (t *Tracker) list(scope string, keep func(todo.Task) bool) ([]Listing, error) {
	c, err := t.load()
	if err != nil {
		return nil, err
	}

	projects := []todo.Project(c)
	if scope != "" {
		p := c.Find(scope)
		if p == nil {
			return nil, &todo.ProjectNotFoundError{Name: scope}
		}
		projects = []todo.Project{*p}
	}

	listings := make([]Listing, 0, len(projects))
	for _, p := range projects {
		l := Listing{Project: p.Name, Total: p.Len()}
		for i, task := range p.Tasks {
			if keep(task) {
				l.Entries = append(l.Entries, Entry{Index: i, Task: task})
			}
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// Projects returns a summary of every project.
func (t *Tracker) Projects() ([]Summary, error) {
	c, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(c))
	for _, p := range c {
		out = append(out, Summary{Name: p.Name, Tasks: p.Len()})
	}
	return out, nil
}

// Names returns the project names, for suggestions.
func (t *Tracker) Names() ([]string, error) {
	c, err := t.load()
	if err != nil {
		return nil, err
	}
	return c.Names(), nil
}

// AddTask adds task to the named project, creating the project if needed.
func (t *Tracker) AddTask(name string, task todo.Task) error {
	c, err := t.load()
	if err != nil {
		return err
	}
	if created := c.Add(name, task); created {
		t.logger.Debug("Created project", "project", name)
	}
	if err := t.save(c); err != nil {
		return err
	}
	t.logger.Debug("Added task", "project", name, "task", task.Description)
	return nil
}

// RemoveTask removes and returns the task at index. A project left empty is
// removed as well.
func (t *Tracker) RemoveTask(name string, index int) (todo.Task, error) {
	c, err := t.load()
	if err != nil {
		return todo.Task{}, err
	}
	task, err := c.Remove(name, index)
	if err != nil {
		return todo.Task{}, err
	}
	if err := t.save(c); err != nil {
		return todo.Task{}, err
	}
	t.logger.Debug("Removed task", "project", name, "index", index, "task", task.Description)
	if c.Find(name) == nil {
		t.logger.Debug("Removed empty project", "project", name)
	}
	return task, nil
}

// EditTask applies patch to the task at index.
func (t *Tracker) EditTask(name string, index int, patch todo.Patch) error {
	c, err := t.load()
	if err != nil {
		return err
	}
	if err := c.Edit(name, index, patch); err != nil {
		return err
	}
	if err := t.save(c); err != nil {
		return err
	}
	t.logger.Debug("Edited task", "project", name, "index", index)
	return nil
}

// MoveTask moves the task at index from one project to another within one
// load and one save.
func (t *Tracker) MoveTask(from string, index int, to string) (todo.Task, error) {
	c, err := t.load()
	if err != nil {
		return todo.Task{}, err
	}
	task, err := c.Move(from, index, to)
	if err != nil {
		return todo.Task{}, err
	}
	if err := t.save(c); err != nil {
		return todo.Task{}, err
	}
	t.logger.Debug("Moved task", "from", from, "to", to, "task", task.Description)
	return task, nil
}

// Rename renames a project.
func (t *Tracker) Rename(oldName, newName string) error {
	c, err := t.load()
	if err != nil {
		return err
	}
	if err := c.Rename(oldName, newName); err != nil {
		return err
	}
	if err := t.save(c); err != nil {
		return err
	}
	t.logger.Debug("Renamed project", "from", oldName, "to", newName)
	return nil
}
