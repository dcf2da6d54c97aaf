package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nibzard/gotask/internal/todo"
)

// maxSuggestions caps the names offered after an unknown project.
const maxSuggestions = 3

// newFlagSet returns a subcommand flag set that reports errors to w.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gotask "+name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseArgs parses fs flags that may appear anywhere among the positional
// arguments and returns the positionals in order. Arguments after a "--"
// terminator are always positional; a "--" given as a flag value is a value.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var tail []string
	if i := terminator(fs, args); i >= 0 {
		tail = args[i+1:]
		args = args[:i]
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	return append(positional, tail...), nil
}

// terminator returns the index of the "--" that ends flag parsing, or -1.
// Values of non-boolean flags written as "-name value" are skipped.
func terminator(fs *flag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		i++
	}
	return -1
}

// usageError reports wrong arguments for a subcommand.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: gotask " + e.usage
}

// parseIndex parses a task index argument.
func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task index %q: refer to a task by its number in the listing", s)
	}
	return idx, nil
}

// parseTaskOptions turns -p and -d flag values into task options.
func parseTaskOptions(priority, deadline string) ([]todo.TaskOption, error) {
	var opts []todo.TaskOption
	if priority != "" {
		p, err := todo.ParsePriority(priority)
		if err != nil {
			return nil, err
		}
		opts = append(opts, todo.WithPriority(p))
	}
	if deadline != "" {
		d, err := todo.ParseDeadline(deadline)
		if err != nil {
			return nil, err
		}
		opts = append(opts, todo.WithDeadline(d))
	}
	return opts, nil
}

// suggest returns up to maxSuggestions names that fuzzy-match name.
func suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)
	var out []string
	for _, m := range matches {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	if len(out) > 0 {
		return out
	}

	// Fall back to prefix or substring matches in either direction.
	lower := strings.ToLower(name)
	for _, n := range names {
		ln := strings.ToLower(n)
		if ln != lower && (strings.Contains(ln, lower) || strings.Contains(lower, ln)) {
			out = append(out, n)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// explain adds "did you mean" hints to an unknown project error.
func (a *app) explain(err error) error {
	var nf *todo.ProjectNotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	names, nameErr := a.tracker.Names()
	if nameErr != nil {
		return err
	}
	hints := suggest(nf.Name, names)
	if len(hints) == 0 {
		return err
	}
	return &suggestionError{err: err, hints: hints}
}

// suggestionError wraps a lookup error with candidate names.
type suggestionError struct {
	err   error
	hints []string
}

func (e *suggestionError) Error() string {
	return fmt.Sprintf("%v (did you mean %s?)", e.err, strings.Join(e.hints, ", "))
}

func (e *suggestionError) Unwrap() error {
	return e.err
}
