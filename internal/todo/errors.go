package todo

import "fmt"

// IndexOutOfRangeError is returned when a task index does not exist in a project.
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("cannot find task %d", e.Index)
}

// InvalidPriorityError is returned when a priority token is not recognized.
type InvalidPriorityError struct {
	Token string
}

func (e *InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority %q, must be one of: urgent, high, normal, low, note", e.Token)
}

// DeadlineParseError is returned when a deadline string cannot be parsed.
type DeadlineParseError struct {
	Input string
	Err   error
}

func (e *DeadlineParseError) Error() string {
	return fmt.Sprintf("invalid deadline %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM): %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeadlineParseError) Unwrap() error {
	return e.Err
}

// ProjectNotFoundError is returned when no project has the requested name.
type ProjectNotFoundError struct {
	Name string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.Name)
}

// ProjectNameTakenError is returned when renaming onto an existing project name.
type ProjectNameTakenError struct {
	Name string
}

func (e *ProjectNameTakenError) Error() string {
	return fmt.Sprintf("project %q already exists", e.Name)
}
