package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that the task file does not exist yet. Callers usually
// treat it as an empty collection.
var ErrNotFound = errors.New("task file not found")

// IOError is a failure reading or writing the task file.
type IOError struct {
	Op   string // "read", "write", "rename", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s task file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports a task file that cannot be decoded or does not match
// the task file schema.
type FormatError struct {
	Path     string
	Problems []string // one entry per schema violation, prefixed with its location
	Err      error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("invalid task file")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	if len(e.Problems) > 0 {
		b.WriteString(": " + strings.Join(e.Problems, "; "))
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
