package cmd

import (
	"fmt"
	"strings"

	"github.com/nibzard/gotask/internal/todo"
	"github.com/nibzard/gotask/internal/tracker"
	"github.com/nibzard/gotask/internal/ui"
)

// listCommand prints the selective listing, or every task when all is set.
func (a *app) listCommand(args []string, all bool) error {
	name := "list"
	if all {
		name = "listall"
	}
	fs := newFlagSet(name, a.stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return &usageError{usage: name + " [project]"}
	}
	scope := ""
	if len(positional) == 1 {
		scope = positional[0]
	}

	var listings []tracker.Listing
	if all {
		listings, err = a.tracker.ListAll(scope)
	} else {
		listings, err = a.tracker.List(scope)
	}
	if err != nil {
		return a.explain(err)
	}
	return a.render.Listings(a.stdout, listings)
}

// projectsCommand prints every project with its task count.
func (a *app) projectsCommand(args []string) error {
	fs := newFlagSet("projects", a.stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return &usageError{usage: "projects"}
	}
	summaries, err := a.tracker.Projects()
	if err != nil {
		return err
	}
	return a.render.Summaries(a.stdout, summaries)
}

// addCommand adds a task, creating the project when needed.
func (a *app) addCommand(args []string) error {
	fs := newFlagSet("add", a.stderr)
	priority := fs.String("p", "", "Priority (urgent, high, normal, low, note)")
	deadline := fs.String("d", "", "Deadline (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 2 {
		return &usageError{usage: "add <project> <description...> [-p priority] [-d deadline]"}
	}

	project := positional[0]
	description := strings.Join(positional[1:], " ")
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("task description is empty")
	}
	opts, err := parseTaskOptions(*priority, *deadline)
	if err != nil {
		return err
	}

	task := todo.NewTask(description, opts...)
	if err := a.tracker.AddTask(project, task); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Added to %s: %s\n", project, a.render.Task(task))
	return nil
}

// doneCommand completes a task by removing it.
func (a *app) doneCommand(args []string) error {
	fs := newFlagSet("done", a.stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return &usageError{usage: "done <project> <index>"}
	}
	idx, err := parseIndex(positional[1])
	if err != nil {
		return err
	}

	task, err := a.tracker.RemoveTask(positional[0], idx)
	if err != nil {
		return a.explain(err)
	}
	fmt.Fprintf(a.stdout, "Done: %s\n", a.render.Task(task))
	return nil
}

// editCommand changes fields of a task.
func (a *app) editCommand(args []string) error {
	fs := newFlagSet("edit", a.stderr)
	message := fs.String("m", "", "New description")
	priority := fs.String("p", "", "New priority (urgent, high, normal, low, note)")
	deadline := fs.String("d", "", "New deadline (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return &usageError{usage: "edit <project> <index> [-m description] [-p priority] [-d deadline]"}
	}
	idx, err := parseIndex(positional[1])
	if err != nil {
		return err
	}

	var patch todo.Patch
	if *message != "" {
		patch.Description = message
	}
	if *priority != "" {
		p, err := todo.ParsePriority(*priority)
		if err != nil {
			return err
		}
		patch.Priority = todo.PriorityPtr(p)
	}
	if *deadline != "" {
		d, err := todo.ParseDeadline(*deadline)
		if err != nil {
			return err
		}
		patch.Deadline = todo.TimePtr(d)
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to change: pass -m, -p or -d")
	}

	if err := a.tracker.EditTask(positional[0], idx, patch); err != nil {
		return a.explain(err)
	}
	fmt.Fprintf(a.stdout, "Edited task %d in %s\n", idx, positional[0])
	return nil
}

// moveCommand moves a task to another project.
func (a *app) moveCommand(args []string) error {
	fs := newFlagSet("move", a.stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 3 {
		return &usageError{usage: "move <project> <index> <new-project>"}
	}
	idx, err := parseIndex(positional[1])
	if err != nil {
		return err
	}

	task, err := a.tracker.MoveTask(positional[0], idx, positional[2])
	if err != nil {
		return a.explain(err)
	}
	fmt.Fprintf(a.stdout, "Moved to %s: %s\n", positional[2], a.render.Task(task))
	return nil
}

// renameCommand renames a project.
func (a *app) renameCommand(args []string) error {
	fs := newFlagSet("rename", a.stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return &usageError{usage: "rename <old> <new>"}
	}

	if err := a.tracker.Rename(positional[0], positional[1]); err != nil {
		return a.explain(err)
	}
	fmt.Fprintf(a.stdout, "Renamed %s to %s\n", positional[0], positional[1])
	return nil
}

// tuiCommand launches the TUI.
func (a *app) tuiCommand(args []string) error {
	fs := newFlagSet("tui", a.stderr)
	all := fs.Bool("all", false, "Start with every task shown")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("unexpected arguments: %v", positional)
	}
	return ui.Run(a.ctx, a.tracker, a.render, ui.WithShowAll(*all))
}
