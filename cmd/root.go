// Package cmd implements the CLI command structure for taskdeck.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/szydag/taskdeck/internal/api"
	"github.com/szydag/taskdeck/internal/config"
	"github.com/szydag/taskdeck/internal/logging"
	"github.com/szydag/taskdeck/internal/output"
	"github.com/szydag/taskdeck/internal/task"
	"github.com/szydag/taskdeck/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskdeck CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	// Default to the TUI when no subcommand is given.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg)
	case "list", "ls":
		return listCommand(ctx, cfg, remainingArgs, os.Stdout)
	case "add":
		return addCommand(ctx, cfg, remainingArgs, os.Stdout)
	case "doctor":
		return doctorCommand(ctx, cfg, os.Stdout)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newClient builds the HTTP client from config.
func newClient(cfg *config.Config, logger *log.Logger) (*api.Client, error) {
	return api.NewClient(cfg.BaseURL, cfg.Timeout(), logger)
}

// tuiCommand runs the interactive screen stack.
func tuiCommand(ctx context.Context, cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.LogDir, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		// Logging never blocks the client; fall through with the
		// discard logger.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer closeLog()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, client, logger, cfg.InitialFilter())
}

// listCommand fetches the filtered collection once and prints it.
func listCommand(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("taskdeck list", flag.ContinueOnError)
	filterName := fs.String("filter", cfg.Filter, "List filter (all|pending|done)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := task.ParseFilter(*filterName)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, logging.Discard())
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		output.FormatHeader(out, filter, len(tasks))
	}
	for i, t := range tasks {
		output.FormatTask(out, i+1, t)
	}
	return nil
}

// addCommand creates one task with the joined title.
func addCommand(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	title := strings.TrimSpace(strings.Join(args, " "))

	d := task.NewDraft()
	if title != "" {
		d.SetTitle(title)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	client, err := newClient(cfg, logging.Discard())
	if err != nil {
		return err
	}

	id, err := client.CreateTask(ctx, d)
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		if id != "" {
			fmt.Fprintf(out, "created %s\n", id)
		} else {
			fmt.Fprintln(out, "created")
		}
	}
	return nil
}

// doctorCommand checks connectivity and validates the collection payload
// against the embedded schema.
func doctorCommand(ctx context.Context, cfg *config.Config, out io.Writer) error {
	client, err := newClient(cfg, logging.Discard())
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(ctx, task.FilterAll)
	if err != nil {
		return fmt.Errorf("endpoint %s unreachable: %w", cfg.BaseURL, err)
	}
	fmt.Fprintf(out, "endpoint: %s\n", cfg.BaseURL)
	fmt.Fprintf(out, "tasks: %d\n", len(tasks))

	raw, err := client.RawCollection(ctx)
	if err != nil {
		return err
	}
	if errs := task.ValidatePayload(raw); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(out, "schema: %v\n", e)
		}
		return fmt.Errorf("payload failed schema validation (%d problems)", len(errs))
	}
	fmt.Fprintln(out, "schema: ok")
	return nil
}

func versionCommand(out io.Writer) error {
	fmt.Fprintf(out, "taskdeck %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Usage: taskdeck [flags] [command]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  tui      Interactive task browser (default)")
	fmt.Fprintln(out, "  list     Print the filtered task list")
	fmt.Fprintln(out, "  add      Create a task from the remaining arguments")
	fmt.Fprintln(out, "  doctor   Check the API endpoint and payload schema")
	fmt.Fprintln(out, "  version  Print the version")
	fmt.Fprintln(out, "  help     Show this help")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}
