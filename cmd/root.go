// Package cmd implements the CLI command structure for gotask.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/gotask/internal/config"
	"github.com/nibzard/gotask/internal/logging"
	"github.com/nibzard/gotask/internal/render"
	"github.com/nibzard/gotask/internal/store"
	"github.com/nibzard/gotask/internal/todo"
	"github.com/nibzard/gotask/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries what every subcommand needs.
type app struct {
	ctx     context.Context
	cws     *config.ConfigWithSources
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger
	store   *store.File
	tracker *tracker.Tracker
	render  *render.Renderer
}

// Run executes the gotask CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, os.Stdout, os.Stderr)
}

// RunWithIO executes the gotask CLI writing output to stdout and stderr.
func RunWithIO(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("gotask", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// Without a subcommand, show the selective listing.
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	a, err := newApp(ctx, cws, stdout, stderr)
	if err != nil {
		return err
	}

	switch subcommand {
	case "list", "l":
		return a.listCommand(remainingArgs, false)
	case "listall", "la":
		return a.listCommand(remainingArgs, true)
	case "add", "a":
		return a.addCommand(remainingArgs)
	case "done", "d", "rm":
		return a.doneCommand(remainingArgs)
	case "edit", "e":
		return a.editCommand(remainingArgs)
	case "move", "mv":
		return a.moveCommand(remainingArgs)
	case "rename":
		return a.renameCommand(remainingArgs)
	case "projects", "p":
		return a.projectsCommand(remainingArgs)
	case "tui":
		return a.tuiCommand(remainingArgs)
	case "doctor":
		return a.doctorCommand(remainingArgs)
	case "init":
		return a.initCommand(remainingArgs)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func newApp(ctx context.Context, cws *config.ConfigWithSources, stdout, stderr io.Writer) (*app, error) {
	cfg := cws.Config
	logger, err := logging.FromConfig(stderr, cfg)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	mode, err := render.ParseColorMode(cfg.Color)
	if err != nil {
		return nil, err
	}

	s := store.New(cfg.TaskFile)
	logger.Debug("Using task file", "path", s.Path, "format", s.Format)
	for _, key := range cws.Unknown {
		logger.Warn("Unknown config key", "key", key)
	}

	return &app{
		ctx:    ctx,
		cws:    cws,
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		store:  s,
		tracker: tracker.New(s,
			tracker.WithSelector(todo.NewSelector(cfg.Weights())),
			tracker.WithLogger(logger),
		),
		render: render.New(stdout, mode),
	}, nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "gotask version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "gotask - a personal task tracker with priority-weighted listings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gotask [global options] [command] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list, l [project]                  List a weighted selection of tasks (default command)")
	fmt.Fprintln(w, "  listall, la [project]              List every task")
	fmt.Fprintln(w, "  add, a <project> <description...>  Add a task")
	fmt.Fprintln(w, "  done, d, rm <project> <index>      Complete (remove) a task")
	fmt.Fprintln(w, "  edit, e <project> <index>          Change a task's description, priority or deadline")
	fmt.Fprintln(w, "  move, mv <project> <index> <to>    Move a task to another project")
	fmt.Fprintln(w, "  rename <old> <new>                 Rename a project")
	fmt.Fprintln(w, "  projects, p                        List projects with task counts")
	fmt.Fprintln(w, "  tui                                Launch terminal UI")
	fmt.Fprintln(w, "  doctor                             Check config and task file validity")
	fmt.Fprintln(w, "  init                               Write an example gotask.toml in the current directory")
	fmt.Fprintln(w, "  version                            Show version information")
	fmt.Fprintln(w, "  help                               Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add/Edit Options (may appear anywhere after the command):")
	fmt.Fprintln(w, "  -p string")
	fmt.Fprintln(w, "        Priority (urgent, high, normal, low, note)")
	fmt.Fprintln(w, "  -d string")
	fmt.Fprintln(w, "        Deadline (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\", local time)")
	fmt.Fprintln(w, "  -m string")
	fmt.Fprintln(w, "        New description (edit only)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Indices refer to the listing shown just before; any change re-sorts the project.")
}
