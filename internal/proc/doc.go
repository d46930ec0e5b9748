// Package proc provides child process management for latex-cli.
//
// The tool drives two kinds of child processes: the LaTeX compiler and
// the preview window (the binary re-invoked with -view). Both are wrapped
// in a Process that tracks lifecycle state, exit codes, and completion.
//
// A typical run:
//
//	cmd := exec.CommandContext(ctx, "pdflatex", args...)
//	p, err := proc.Start("pdflatex", cmd)
//	if err != nil {
//	    return err
//	}
//	<-p.Done()
//	fmt.Printf("Exit code: %d\n", p.ExitCode())
//
// Process is safe for concurrent use.
package proc
