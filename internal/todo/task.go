package todo

import (
	"strings"
	"time"
)

// Task represents a single actionable item.
type Task struct {
	Description string     `json:"description" yaml:"description"`
	Priority    *Priority  `json:"priority" yaml:"priority"`
	Deadline    *time.Time `json:"deadline" yaml:"deadline"`
}

// TaskOption sets an optional task field.
type TaskOption func(*Task)

// WithPriority sets the task priority.
func WithPriority(p Priority) TaskOption {
	return func(t *Task) {
		t.Priority = PriorityPtr(p)
	}
}

// WithDeadline sets the task deadline.
func WithDeadline(d time.Time) TaskOption {
	return func(t *Task) {
		t.Deadline = TimePtr(d)
	}
}

// NewTask returns a task with the given description and options applied.
func NewTask(description string, opts ...TaskOption) Task {
	t := Task{Description: description}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// EffectivePriority returns the task priority, or Normal if it has none.
func (t Task) EffectivePriority() Priority {
	if t.Priority == nil {
		return Normal
	}
	return *t.Priority
}

// Equal reports whether two tasks have the same description, priority and deadline.
func (t Task) Equal(other Task) bool {
	if t.Description != other.Description {
		return false
	}
	if (t.Priority == nil) != (other.Priority == nil) {
		return false
	}
	if t.Priority != nil && *t.Priority != *other.Priority {
		return false
	}
	if (t.Deadline == nil) != (other.Deadline == nil) {
		return false
	}
	return t.Deadline == nil || t.Deadline.Equal(*other.Deadline)
}

// Compare orders tasks by effective priority, most urgent first, then by
// description. It returns a negative number when a sorts before b.
func Compare(a, b Task) int {
	pa, pb := a.EffectivePriority(), b.EffectivePriority()
	if pa != pb {
		return int(pa) - int(pb)
	}
	return strings.Compare(a.Description, b.Description)
}

// Patch is a partial task update. Nil fields leave the task untouched.
type Patch struct {
	Description *string
	Priority    *Priority
	Deadline    *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Description == nil && p.Priority == nil && p.Deadline == nil
}

// Apply returns a copy of t with the patch's present fields replaced.
func (p Patch) Apply(t Task) Task {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = PriorityPtr(*p.Priority)
	}
	if p.Deadline != nil {
		t.Deadline = TimePtr(*p.Deadline)
	}
	return t
}
