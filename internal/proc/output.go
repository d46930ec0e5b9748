package proc

import (
	"bufio"
	"io"
	"sync"
)

// OutputCapture collects process output line by line.
//
// The LaTeX compiler reports diagnostics on stdout; both streams are
// captured so the error excerpt can be extracted after a failed run.
type OutputCapture struct {
	// lines stores captured lines in arrival order.
	lines []string

	// bufferSize is the maximum length of a single line.
	bufferSize int

	// mu protects lines.
	mu sync.RWMutex
}

// NewOutputCapture creates an output capture.
// bufferSize bounds single-line length; <= 0 selects a 64KB default.
func NewOutputCapture(bufferSize int) *OutputCapture {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024
	}
	return &OutputCapture{
		lines:      make([]string, 0, 256),
		bufferSize: bufferSize,
	}
}

// Consume reads r to EOF, recording each line.
// Returns any error from the scanner (e.g. token too long).
func (c *OutputCapture) Consume(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, c.bufferSize), c.bufferSize)

	for scanner.Scan() {
		c.mu.Lock()
		c.lines = append(c.lines, scanner.Text())
		c.mu.Unlock()
	}

	return scanner.Err()
}

// ConsumeAsync starts consuming in a goroutine.
// The returned channel receives the scanner error (if any) and is then closed.
func (c *OutputCapture) ConsumeAsync(r io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		if err := c.Consume(r); err != nil {
			done <- err
		}
		close(done)
	}()
	return done
}

// Lines returns all captured lines.
func (c *OutputCapture) Lines() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]string, len(c.lines))
	copy(result, c.lines)
	return result
}
