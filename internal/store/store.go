// Package store reads and writes the task file.
//
// The whole collection is written on every save: the new content goes to a
// temporary file in the same directory, which is then renamed over the task
// file. A reader therefore sees either the previous file or the new one,
// never a partial write. There is no locking; two processes saving at once
// race and the last rename wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/gotask/internal/todo"
)

// Format selects the task file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension. Anything that is not
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// File is a task collection stored at Path.
type File struct {
	Path   string
	Format Format
}

// New returns a File store for path, with the format taken from its extension.
func New(path string) *File {
	return &File{Path: path, Format: FormatFor(path)}
}

// Load reads and decodes the collection. The result is always normalized:
// tasks and projects sorted, empty projects dropped. A missing file returns
// an error that matches ErrNotFound.
func (f *File) Load() (todo.Collection, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f.Path, ErrNotFound)
		}
		return nil, &IOError{Op: "read", Path: f.Path, Err: err}
	}

	c, err := f.decode(data)
	if err != nil {
		return nil, err
	}
	c.Normalize()
	return c, nil
}

// Check reports whether the file loads: it must match the task file schema
// and name each project once. The decoded collection is discarded.
func (f *File) Check() error {
	_, err := f.Load()
	return err
}

// Save encodes the collection in sorted form and atomically replaces the file.
func (f *File) Save(c todo.Collection) error {
	c = c.Clone()
	c.Normalize()

	data, err := f.encode(c)
	if err != nil {
		return &FormatError{Path: f.Path, Err: err}
	}
	return writeAtomic(f.Path, data)
}

func (f *File) decode(data []byte) (todo.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return todo.Collection{}, nil
	}

	var (
		c   todo.Collection
		err error
	)
	switch f.Format {
	case FormatYAML:
		c, err = f.decodeYAML(data)
	default:
		c, err = f.decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}
	if problems := duplicateNames(c); len(problems) > 0 {
		return nil, &FormatError{Path: f.Path, Problems: problems}
	}
	return c, nil
}

// duplicateNames reports every project whose name was already used by an
// earlier project in the file.
func duplicateNames(c todo.Collection) []string {
	first := make(map[string]int, len(c))
	var problems []string
	for i, p := range c {
		if j, ok := first[p.Name]; ok {
			problems = append(problems, fmt.Sprintf("[%d].name: duplicate project name %q (first at [%d])", i, p.Name, j))
			continue
		}
		first[p.Name] = i
	}
	return problems
}

func (f *File) decodeJSON(data []byte) (todo.Collection, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("parse json: %w", err)}
	}
	if err := f.validate(doc); err != nil {
		return nil, err
	}

	var c todo.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("decode json: %w", err)}
	}
	return c, nil
}

// decodeYAML validates the untyped document, carried through JSON so YAML
// timestamps become date-time strings, and only then decodes the collection.
func (f *File) decodeYAML(data []byte) (todo.Collection, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("parse yaml: %w", err)}
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("convert yaml: %w", err)}
	}
	var doc interface{}
	if err := json.Unmarshal(asJSON, &doc); err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("convert yaml: %w", err)}
	}
	if err := f.validate(doc); err != nil {
		return nil, err
	}

	var c todo.Collection
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, &FormatError{Path: f.Path, Err: fmt.Errorf("decode yaml: %w", err)}
	}
	return c, nil
}

func (f *File) validate(doc interface{}) error {
	problems, err := validateDocument(doc)
	if err != nil {
		return &FormatError{Path: f.Path, Err: err}
	}
	if len(problems) > 0 {
		return &FormatError{Path: f.Path, Problems: problems}
	}
	return nil
}

func (f *File) encode(c todo.Collection) ([]byte, error) {
	if c == nil {
		c = todo.Collection{}
	}
	switch f.Format {
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// writeAtomic writes data to a temporary sibling of path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create temp file for", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		cleanup()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return &IOError{Op: "replace", Path: path, Err: err}
	}
	return nil
}
