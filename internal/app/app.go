package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/simakma5/latex-cli/internal/config"
	"github.com/simakma5/latex-cli/internal/pdf"
	"github.com/simakma5/latex-cli/internal/repl"
	"github.com/simakma5/latex-cli/internal/tex"
	"github.com/simakma5/latex-cli/internal/viewer"
)

// compileRunner turns a document into a PDF on disk.
type compileRunner interface {
	Compile(ctx context.Context, doc tex.Document) (string, error)
}

// previewer shows a rendered artifact and blocks until it is dismissed.
type previewer interface {
	Show(ctx context.Context, art *pdf.Artifact) error
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	// Empty selects the default location.
	ConfigPath string

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// Input is the REPL input stream. Defaults to os.Stdin.
	Input io.Reader

	// Output is the user-facing output stream. Defaults to os.Stdout.
	Output io.Writer

	// Interactive enables prompt output. Defaults to terminal detection.
	Interactive *bool
}

// Application is the central coordinator for the compile-preview cycle.
type Application struct {
	cfg    *config.Config
	logger *Logger

	collector *repl.Collector
	workspace *tex.Workspace
	compiler  compileRunner
	renderer  pdf.Renderer
	previewer previewer

	out io.Writer

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	loggerCfg := DefaultLoggerConfig()
	loggerCfg.Level = ParseLogLevel(level)
	logger := NewLogger(loggerCfg)

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	// Terminal detection only applies when reading the real stdin; an
	// injected reader is treated as piped input.
	interactive := opts.Input == nil && repl.StdinInteractive()
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	}

	workspace := tex.NewWorkspace(cfg.Workspace.Dir)

	renderer, err := pdf.NewRenderer(cfg.Preview.Renderer, cfg.Preview.DPI)
	if err != nil {
		return nil, err
	}

	launcher, err := viewer.NewLauncher(cfg.Preview.Margin)
	if err != nil {
		return nil, err
	}

	collector := repl.New(in, out, repl.Options{
		Sentinel:     cfg.REPL.Sentinel,
		QuitCommand:  ":q",
		Prompt:       cfg.REPL.Prompt,
		Continuation: cfg.REPL.Continuation,
		Interactive:  interactive,
	})

	return &Application{
		cfg:       cfg,
		logger:    logger,
		collector: collector,
		workspace: workspace,
		compiler:  tex.NewCompiler(workspace, cfg.Compiler.Command, cfg.Compiler.Timeout.Duration),
		renderer:  renderer,
		previewer: launcher,
		out:       out,
		done:      make(chan struct{}),
	}, nil
}

// Run drives the REPL until the user quits. It returns ErrQuit on a
// normal exit.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	a.banner()

	ctx := context.Background()

	for {
		select {
		case <-a.done:
			return ErrQuit
		default:
		}

		snippet, err := a.collector.Collect()
		if err != nil {
			if errors.Is(err, repl.ErrQuit) {
				fmt.Fprintln(a.out, "\nExiting.")
				return ErrQuit
			}
			return err
		}

		if err := a.runCycle(ctx, snippet); err != nil {
			return err
		}
	}
}

// runCycle executes one compile-render-preview-clean cycle.
// Stage failures are reported to the user and the session continues,
// except a missing scratch directory, which ends the session: no later
// cycle can succeed without it.
func (a *Application) runCycle(ctx context.Context, snippet string) error {
	defer a.clean()

	fmt.Fprintln(a.out, "Compiling...")

	doc := tex.Document{
		Snippet:  snippet,
		Packages: a.cfg.Document.Packages,
	}

	pdfPath, err := a.compiler.Compile(ctx, doc)
	if err != nil {
		var cerr *tex.CompileError
		if errors.As(err, &cerr) {
			fmt.Fprintln(a.out, "\n--- LaTeX Compilation Error ---")
			fmt.Fprintln(a.out, cerr.Excerpt)
			return nil
		}
		if errors.Is(err, tex.ErrScratchDir) {
			return NewStageError("workspace", err)
		}
		a.report(NewStageError("compile", err))
		return nil
	}

	fmt.Fprintln(a.out, "Compilation successful! Displaying preview...")

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		a.report(NewStageError("render", err))
		return nil
	}

	art, err := a.renderer.Render(data)
	if err != nil {
		a.report(NewStageError("render", err))
		return nil
	}

	if err := a.previewer.Show(ctx, art); err != nil {
		a.report(NewStageError("view", err))
	}
	return nil
}

// Shutdown releases resources. Safe to call multiple times.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.done)
		if err := a.workspace.Destroy(); err != nil {
			a.logger.Warn("remove scratch directory: %v", err)
		}
	})
}

// banner prints the session header.
func (a *Application) banner() {
	fmt.Fprintln(a.out, "--- LaTeX Live Preview CLI ---")
	fmt.Fprintf(a.out, "Type your LaTeX code. Enter %q on a new line to compile.\n", a.cfg.REPL.Sentinel)
	fmt.Fprintln(a.out, "Press Ctrl+C to exit.")
}

// report surfaces a stage failure without ending the session.
func (a *Application) report(err *StageError) {
	a.logger.Error("%v", err)
	fmt.Fprintf(a.out, "\n--- Preview Generation Error ---\n%v\n", err)
}

// clean removes transient compiler byproducts after a cycle.
func (a *Application) clean() {
	if err := a.workspace.Clean(); err != nil {
		a.logger.Warn("cleanup: %v", err)
	}
}
