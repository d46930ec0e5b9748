// Package repl implements the interactive line collector.
//
// The collector reads lines until a sentinel token is seen, then hands the
// joined snippet to the caller. No LaTeX validation is performed; malformed
// input surfaces at compile time.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Collector errors.
var (
	// ErrQuit signals that the user ended the session (quit command or EOF).
	ErrQuit = errors.New("quit requested")
)

// Options configures a Collector.
type Options struct {
	// Sentinel is the line that triggers compilation.
	Sentinel string

	// QuitCommand ends the session when entered on its own line.
	QuitCommand string

	// Prompt is written before the first line of a snippet.
	Prompt string

	// Continuation is written before subsequent lines.
	Continuation string

	// Interactive enables prompt output. Disable when input is piped.
	Interactive bool
}

// DefaultOptions returns collector defaults matching the CLI surface.
func DefaultOptions() Options {
	return Options{
		Sentinel:     ":c",
		QuitCommand:  ":q",
		Prompt:       ">>> ",
		Continuation: "... ",
		Interactive:  true,
	}
}

// Collector accumulates input lines into a session buffer.
type Collector struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options

	// lines is the session buffer; reset after each collected snippet.
	lines []string
}

// New creates a collector reading from r and writing prompts and
// notices to out.
func New(r io.Reader, out io.Writer, opts Options) *Collector {
	if opts.Sentinel == "" {
		opts.Sentinel = ":c"
	}
	return &Collector{
		in:   bufio.NewReader(r),
		out:  out,
		opts: opts,
	}
}

// Len returns the number of buffered lines.
func (c *Collector) Len() int {
	return len(c.lines)
}

// Collect reads lines until the sentinel token and returns the joined
// snippet. It returns ErrQuit when the user quits or input ends.
func (c *Collector) Collect() (string, error) {
	c.lines = c.lines[:0]

	for {
		c.prompt()

		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return "", ErrQuit
			}
			return "", fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")

		switch strings.ToLower(strings.TrimSpace(line)) {
		case strings.ToLower(c.opts.Sentinel):
			if len(c.lines) == 0 {
				fmt.Fprintln(c.out, "No code to compile.")
				continue
			}
			snippet := strings.Join(c.lines, "\n")
			c.lines = c.lines[:0]
			return snippet, nil

		case strings.ToLower(c.opts.QuitCommand):
			if c.opts.QuitCommand != "" {
				return "", ErrQuit
			}
			c.lines = append(c.lines, line)

		default:
			c.lines = append(c.lines, line)
		}

		if err == io.EOF {
			return "", ErrQuit
		}
	}
}

// prompt writes the appropriate prompt for the next line.
func (c *Collector) prompt() {
	if !c.opts.Interactive {
		return
	}
	if len(c.lines) == 0 {
		fmt.Fprint(c.out, c.opts.Prompt)
	} else {
		fmt.Fprint(c.out, c.opts.Continuation)
	}
}

// StdinInteractive reports whether standard input is a terminal.
func StdinInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
