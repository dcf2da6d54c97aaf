package todo

import (
	"fmt"
	"sort"
	"strings"
)

// Project is a named group of tasks. Tasks stay sorted by Compare; change
// them through the methods rather than the slice.
type Project struct {
	Name  string `json:"name" yaml:"name"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// NewProject returns an empty project.
func NewProject(name string) Project {
	return Project{Name: name, Tasks: []Task{}}
}

// Len returns the number of tasks.
func (p *Project) Len() int {
	return len(p.Tasks)
}

// Sort restores task order after an external change to Tasks.
func (p *Project) Sort() {
	sort.SliceStable(p.Tasks, func(i, j int) bool {
		return Compare(p.Tasks[i], p.Tasks[j]) < 0
	})
}

// Push adds a task and re-sorts.
func (p *Project) Push(t Task) {
	p.Tasks = append(p.Tasks, t)
	p.Sort()
}

// Remove deletes and returns the task at index. Later tasks shift down by one.
func (p *Project) Remove(index int) (Task, error) {
	if err := p.checkIndex(index); err != nil {
		return Task{}, err
	}
	t := p.Tasks[index]
	p.Tasks = append(p.Tasks[:index], p.Tasks[index+1:]...)
	return t, nil
}

// Edit applies patch to the task at index and re-sorts.
func (p *Project) Edit(index int, patch Patch) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.Tasks[index] = patch.Apply(p.Tasks[index])
	p.Sort()
	return nil
}

// Rename changes the project name. Uniqueness is the collection's concern.
func (p *Project) Rename(name string) {
	p.Name = name
}

func (p *Project) checkIndex(index int) error {
	if index < 0 || index >= len(p.Tasks) {
		return &IndexOutOfRangeError{Index: index}
	}
	return nil
}

// String returns a summary such as "work: 2 tasks".
func (p Project) String() string {
	noun := "tasks"
	if len(p.Tasks) == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%s: %d %s", p.Name, len(p.Tasks), noun)
}

// Equal reports whether two projects have the same name and equal tasks in order.
func (p Project) Equal(other Project) bool {
	if p.Name != other.Name || len(p.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range p.Tasks {
		if !p.Tasks[i].Equal(other.Tasks[i]) {
			return false
		}
	}
	return true
}

// CompareProjects orders projects by name, then by their tasks element-wise,
// then by task count.
func CompareProjects(a, b Project) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	for i := 0; i < len(a.Tasks) && i < len(b.Tasks); i++ {
		if c := Compare(a.Tasks[i], b.Tasks[i]); c != 0 {
			return c
		}
	}
	return len(a.Tasks) - len(b.Tasks)
}
