// Package main is the entry point for the latex-cli preview tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simakma5/latex-cli/internal/app"
	"github.com/simakma5/latex-cli/internal/clipboard"
	"github.com/simakma5/latex-cli/internal/viewer"
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
	opts, viewMode := parseFlags()

	if viewMode {
		// Viewer process: read the artifact from stdin and display it.
		// Must stay on the main goroutine for the window loop.
		if err := viewer.Run(os.Stdin, clipboard.System{}); err != nil {
			fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
			return 1
		}
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Handle signals for graceful shutdown. Input reads block, so the
	// handler cleans up and exits directly.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		fmt.Println("\nExiting.")
		application.Shutdown()
		os.Exit(0)
	}()

	if err := application.Run(); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var viewMode bool
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&viewMode, "view", false, "Internal: run as the preview window process")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "latex-cli - interactive LaTeX preview\n\n")
		fmt.Fprintf(os.Stderr, "Usage: latex-cli [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nType LaTeX at the prompt, then ':c' on its own line to compile\n")
		fmt.Fprintf(os.Stderr, "and preview. ':q' or Ctrl+C exits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("latex-cli %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts, viewMode
}
