// Package main is the entry point for the tagedit editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/tagedit/internal/app"
	"github.com/dshills/tagedit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, exit := parseFlags(os.Args[1:])
	if exit {
		return code
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Close()

	// Create terminal backend
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the application
	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags parses args. When exit is set the program should stop with
// code.
func parseFlags(args []string) (opts app.Options, code int, exit bool) {
	fs := flag.NewFlagSet("tagedit", flag.ContinueOnError)
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log", "", "Write the log to this file")
	fs.IntVar(&opts.TabSize, "tab", 0, "Tab size (overrides the config)")
	fs.BoolVar(&opts.ReadOnly, "readonly", false, "Open the file in read-only mode")
	fs.BoolVar(&opts.ReadOnly, "R", false, "Open the file in read-only mode (shorthand)")
	fs.BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the config file on change")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "tagedit - terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: tagedit [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  Ctrl-S save   Ctrl-Q quit   Ctrl-A select all\n")
		fmt.Fprintf(out, "  Ctrl-C copy   Ctrl-X cut    Ctrl-V paste   Insert toggle overwrite\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Printf("tagedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, 1, true
	}

	if opts.TabSize < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid tab size %d\n", opts.TabSize)
		return opts, 1, true
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: only one file can be opened\n")
		return opts, 1, true
	}

	return opts, 0, false
}
