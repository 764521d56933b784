// Package cmd implements the CLI command structure for tasks.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/tasks-go/internal/appdir"
	"github.com/nibzard/tasks-go/internal/config"
	"github.com/nibzard/tasks-go/internal/logging"
	"github.com/nibzard/tasks-go/internal/todo"
	"github.com/nibzard/tasks-go/internal/utils"
)

// Version is set via ldflags at build time.
var Version = "dev"

// App runs a single command against the storage file.
type App struct {
	StoragePath string
	Out         io.Writer
	Logger      *log.Logger
	Clock       todo.Clock
	Renderer    *todo.Renderer
}

// Run executes the tasks CLI.
func Run(ctx context.Context, args []string) error {
	dir, err := appdir.Dir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := os.Stdout
	terminal := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	app := &App{
		StoragePath: cfg.StorageFile,
		Out:         out,
		Logger:      logging.FromConfig(os.Stderr, cfg),
		Clock:       todo.SystemClock{},
		Renderer:    todo.NewRenderer(out, cfg.UseColor(terminal)),
	}
	app.Logger.Debug("config loaded", "dir", cfg.Dir, "config_file", cfg.ConfigFile, "color", cfg.Color, "version", Version)

	return app.Run(ctx, args)
}

// Run loads the list, dispatches one command, and saves the list.
// Nothing is saved when the command fails.
func (a *App) Run(ctx context.Context, args []string) error {
	a.defaults()

	list, created, err := todo.LoadOrCreate(a.StoragePath)
	if err != nil {
		return err
	}
	a.Logger.Debug("tasks loaded", "path", a.StoragePath, "created", created, "count", list.Len())

	if err := a.dispatch(list, args); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := list.Save(a.StoragePath); err != nil {
		return err
	}
	a.Logger.Debug("tasks saved", "path", a.StoragePath, "count", list.Len())
	return nil
}

func (a *App) defaults() {
	if a.Out == nil {
		a.Out = io.Discard
	}
	if a.Logger == nil {
		a.Logger = logging.Discard()
	}
	if a.Clock == nil {
		a.Clock = todo.SystemClock{}
	}
	if a.Renderer == nil {
		a.Renderer = todo.NewRenderer(a.Out, false)
	}
}

func (a *App) dispatch(list *todo.List, args []string) error {
	command := ""
	var rest []string
	if len(args) > 0 {
		command = strings.ToLower(args[0])
		rest = args[1:]
	}
	a.Logger.Debug("dispatch", "command", command, "args", len(rest))

	switch command {
	case "add", "a":
		return a.addCommand(list, rest)
	case "change", "ch", "c":
		return a.changeCommand(list, rest)
	case "list", "l":
		fmt.Fprintln(a.Out, a.Renderer.List(list))
		return nil
	case "remove", "rm", "r":
		return a.removeCommand(list, rest)
	case "file":
		fmt.Fprintln(a.Out, a.StoragePath)
		return nil
	default:
		fmt.Fprintln(a.Out, "Wrong command")
		return nil
	}
}

// addCommand appends a task built from a name and description words.
func (a *App) addCommand(list *todo.List, args []string) error {
	if len(args) < 1 {
		return usageError("add", "name must be given")
	}

	task := todo.NewTask(a.Clock, args[0], utils.JoinWords(utils.WordsFrom(args, 1)))
	index := list.Len()
	list.Add(task)

	fmt.Fprintf(a.Out, "%s was successfully added\n", a.Renderer.Entry(index, task))
	return nil
}

// changeCommand replaces the name or description of a task.
func (a *App) changeCommand(list *todo.List, args []string) error {
	if len(args) < 1 {
		return usageError("change", "task's number must be given")
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return usageError("change", "first argument of change should be a number")
	}

	task, err := list.Get(index)
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return usageError("change", "second argument of change must be given")
	}
	value := utils.JoinWords(utils.WordsFrom(args, 2))
	switch args[1] {
	case "name", "n":
		task.Name = value
	case "description", "desc", "d":
		task.Description = value
	default:
		return usageError("change", "second argument of change should be name or description")
	}

	a.Logger.Debug("task changed", "index", index, "field", args[1])
	return nil
}

// removeCommand deletes a task and prints it.
func (a *App) removeCommand(list *todo.List, args []string) error {
	if len(args) < 1 {
		return usageError("remove", "task's number must be given")
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return usageError("remove", "task's number should be a number")
	}

	task, err := list.Remove(index)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s was successfully removed\n", a.Renderer.Task(task))
	return nil
}

// parseIndex parses a non-negative positional index.
func parseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
