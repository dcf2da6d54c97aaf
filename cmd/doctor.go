package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nibzard/gotask/internal/config"
	"github.com/nibzard/gotask/internal/store"
)

// configFileName is the project config written by init.
const configFileName = "gotask.toml"

// doctorCommand checks config and task file validity.
func (a *app) doctorCommand(args []string) error {
	flags := newFlagSet("doctor", a.stderr)
	verbose := flags.Bool("verbose", false, "List every project")
	example := flags.Bool("example", false, "Print an example config file and exit")
	positional, err := parseArgs(flags, args)
	if err != nil {
		return err
	}
	if *example {
		fmt.Fprint(a.stdout, config.ExampleConfig())
		return nil
	}
	if len(positional) > 0 {
		return fmt.Errorf("unexpected arguments: %v", positional)
	}

	w := a.stdout
	fmt.Fprintln(w, "gotask doctor")
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w)

	allOK := true

	// Config files
	fmt.Fprintln(w, "Config files:")
	if len(a.cws.Files) == 0 {
		fmt.Fprintln(w, "  ⚠️  None found (using defaults)")
	}
	for _, f := range a.cws.Files {
		fmt.Fprintf(w, "  ✅ %s\n", f)
	}
	if active := a.cws.GetConfigFile(); active != "" {
		fmt.Fprintf(w, "  Active: %s\n", active)
	}
	for _, key := range a.cws.Unknown {
		fmt.Fprintf(w, "  ⚠️  Unknown key: %s\n", key)
	}
	fmt.Fprintln(w)

	// Effective values. Load already validated them.
	fmt.Fprintln(w, "Config:")
	for _, field := range config.Fields() {
		source := a.cws.Sources[field]
		if source == "" {
			source = config.SourceDefault
		}
		fmt.Fprintf(w, "  ✅ %s: %s (%s)\n", field, a.cfg.Value(field), source)
	}
	fmt.Fprintln(w)

	// Task file
	fmt.Fprintf(w, "Task file: %s (%s)\n", a.store.Path, a.store.Format)
	info, err := os.Stat(a.store.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(w, "  ⚠️  Not found (will be created by the first add)")
		if _, dirErr := os.Stat(filepath.Dir(a.store.Path)); dirErr != nil && !errors.Is(dirErr, fs.ErrNotExist) {
			fmt.Fprintf(w, "  ❌ Directory: %v\n", dirErr)
			allOK = false
		}
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Fprintln(w, "  ✅ OK")
		if !a.checkTaskFile(*verbose) {
			allOK = false
		}
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. gotask may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkTaskFile validates an existing task file and reports its contents.
func (a *app) checkTaskFile(verbose bool) bool {
	w := a.stdout
	if err := a.store.Check(); err != nil {
		var fe *store.FormatError
		if errors.As(err, &fe) && len(fe.Problems) > 0 {
			fmt.Fprintln(w, "  ❌ Validation failed:")
			for _, p := range fe.Problems {
				fmt.Fprintf(w, "     - %s\n", p)
			}
		} else {
			fmt.Fprintf(w, "  ❌ Load error: %v\n", err)
		}
		return false
	}
	fmt.Fprintln(w, "  ✅ Valid")

	c, err := a.store.Load()
	if err != nil {
		fmt.Fprintf(w, "  ❌ Load error: %v\n", err)
		return false
	}

	tasks := 0
	for _, p := range c {
		tasks += p.Len()
	}
	fmt.Fprintf(w, "  Projects: %d, tasks: %d\n", len(c), tasks)
	if verbose {
		for _, p := range c {
			fmt.Fprintf(w, "    - %s: %d\n", p.Name, p.Len())
		}
	}
	return true
}

// initCommand writes an example config file to the current directory.
func (a *app) initCommand(args []string) error {
	flags := newFlagSet("init", a.stderr)
	force := flags.Bool("force", false, "Overwrite an existing config file")
	positional, err := parseArgs(flags, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("unexpected arguments: %v", positional)
	}

	if _, err := os.Stat(configFileName); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", configFileName)
	}
	if err := os.WriteFile(configFileName, []byte(config.ExampleConfig()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configFileName, err)
	}
	a.logger.Debug("Wrote config file", "path", configFileName)
	fmt.Fprintf(a.stdout, "Wrote %s\n", configFileName)
	return nil
}
