package todo

import "sort"

// Collection is the full set of projects. Mutating methods keep it sorted
// and drop projects that become empty.
type Collection []Project

// Normalize sorts every project's tasks, drops empty projects, and sorts the
// projects. Loaded collections pass through here before use.
func (c *Collection) Normalize() {
	kept := (*c)[:0]
	for _, p := range *c {
		if p.Len() == 0 {
			continue
		}
		p.Sort()
		kept = append(kept, p)
	}
	*c = kept
	c.sortProjects()
}

func (c *Collection) sortProjects() {
	sort.SliceStable(*c, func(i, j int) bool {
		return CompareProjects((*c)[i], (*c)[j]) < 0
	})
}

// Find returns the project with the given name, or nil.
func (c Collection) Find(name string) *Project {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// Names returns the project names in collection order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name)
	}
	return names
}

// Equal reports whether two collections hold equal projects in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, so the original stays untouched by mutations.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, p := range c {
		tasks := make([]Task, len(p.Tasks))
		for j, t := range p.Tasks {
			if t.Priority != nil {
				t.Priority = PriorityPtr(*t.Priority)
			}
			if t.Deadline != nil {
				t.Deadline = TimePtr(*t.Deadline)
			}
			tasks[j] = t
		}
		out[i] = Project{Name: p.Name, Tasks: tasks}
	}
	return out
}

// Add pushes t into the named project, creating the project if needed.
// It reports whether a project was created.
func (c *Collection) Add(name string, t Task) bool {
	if p := c.Find(name); p != nil {
		p.Push(t)
		c.sortProjects()
		return false
	}
	p := NewProject(name)
	p.Push(t)
	*c = append(*c, p)
	c.sortProjects()
	return true
}

// Remove deletes the task at index from the named project. A project left
// without tasks is removed from the collection.
func (c *Collection) Remove(name string, index int) (Task, error) {
	p := c.Find(name)
	if p == nil {
		return Task{}, &ProjectNotFoundError{Name: name}
	}
	t, err := p.Remove(index)
	if err != nil {
		return Task{}, err
	}
	c.prune()
	c.sortProjects()
	return t, nil
}

// Edit applies patch to the task at index in the named project.
func (c *Collection) Edit(name string, index int, patch Patch) error {
	p := c.Find(name)
	if p == nil {
		return &ProjectNotFoundError{Name: name}
	}
	if err := p.Edit(index, patch); err != nil {
		return err
	}
	c.sortProjects()
	return nil
}

// Move takes the task at index out of project from and adds it to project to.
// Both steps apply to the same collection value, so a caller that stores the
// result once never loses the task between them.
func (c *Collection) Move(from string, index int, to string) (Task, error) {
	t, err := c.Remove(from, index)
	if err != nil {
		return Task{}, err
	}
	c.Add(to, t)
	return t, nil
}

// Rename changes a project name. The new name must not belong to another project.
func (c *Collection) Rename(oldName, newName string) error {
	p := c.Find(oldName)
	if p == nil {
		return &ProjectNotFoundError{Name: oldName}
	}
	if oldName == newName {
		return nil
	}
	if c.Find(newName) != nil {
		return &ProjectNameTakenError{Name: newName}
	}
	p.Rename(newName)
	c.sortProjects()
	return nil
}

func (c *Collection) prune() {
	kept := (*c)[:0]
	for _, p := range *c {
		if p.Len() > 0 {
			kept = append(kept, p)
		}
	}
	*c = kept
}
