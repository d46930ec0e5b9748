package tex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/simakma5/latex-cli/internal/proc"
)

// Compiler errors.
var (
	// ErrNoPDF indicates the compiler exited successfully but produced no PDF.
	ErrNoPDF = errors.New("compiler produced no PDF")
)

// excerptLines is the number of log lines included after the first error.
const excerptLines = 5

// CompileError reports a failed compiler run.
type CompileError struct {
	// Command is the compiler binary that was invoked.
	Command string

	// ExitCode is the compiler's exit code.
	ExitCode int

	// Excerpt is the diagnostic extracted from the compiler output.
	Excerpt string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s failed (exit %d)", e.Command, e.ExitCode)
}

// Compiler invokes the external LaTeX compiler inside the workspace.
type Compiler struct {
	// Command is the compiler binary to invoke.
	Command string

	// Timeout bounds a single run. Zero means no timeout.
	Timeout time.Duration

	ws *Workspace
}

// NewCompiler creates a compiler bound to ws.
func NewCompiler(ws *Workspace, command string, timeout time.Duration) *Compiler {
	if command == "" {
		command = "pdflatex"
	}
	return &Compiler{
		Command: command,
		Timeout: timeout,
		ws:      ws,
	}
}

// Compile writes doc into the workspace, runs the compiler with the working
// directory pinned to the scratch directory, and returns the produced PDF
// path. A non-zero exit yields a *CompileError carrying the diagnostic
// excerpt from the compiler output.
func (c *Compiler) Compile(ctx context.Context, doc Document) (string, error) {
	root, err := c.ws.Ensure()
	if err != nil {
		return "", err
	}

	texPath := c.ws.TexPath()
	if err := os.WriteFile(texPath, []byte(doc.Source()), 0o644); err != nil {
		return "", fmt.Errorf("write source: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command,
		"-interaction=nonstopmode",
		"-output-directory="+root,
		texPath,
	)
	cmd.Dir = root

	// Diagnostics arrive on stdout; capture both streams combined.
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	capture := proc.NewOutputCapture(0)
	captured := capture.ConsumeAsync(pr)

	p, err := proc.Start(c.Command, cmd)
	if err != nil {
		pw.Close()
		return "", err
	}

	<-p.Done()
	pw.Close()
	<-captured

	if ctx.Err() != nil {
		return "", fmt.Errorf("compile: %w", ctx.Err())
	}

	if code := p.ExitCode(); code != 0 {
		return "", &CompileError{
			Command:  c.Command,
			ExitCode: code,
			Excerpt:  extractExcerpt(capture.Lines()),
		}
	}

	pdfPath := c.ws.PDFPath()
	if _, err := os.Stat(pdfPath); err != nil {
		return "", ErrNoPDF
	}
	return pdfPath, nil
}

// extractExcerpt pulls the first "!"-prefixed diagnostic from the compiler
// output plus the lines that follow it.
func extractExcerpt(lines []string) string {
	for i, line := range lines {
		if strings.HasPrefix(line, "!") {
			end := i + excerptLines
			if end > len(lines) {
				end = len(lines)
			}
			return strings.Join(lines[i:end], "\n")
		}
	}
	return "An unknown error occurred. Check the .log file."
}
