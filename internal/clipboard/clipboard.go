// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Copier copies textual data to the clipboard.
type Copier interface {
	Copy(text string) error
}

// System implements Copier using the OS clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process Copier for tests.
type Memory struct {
	mu       sync.Mutex
	contents string
	copies   int
}

// Copy stores text in memory.
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = text
	m.copies++
	return nil
}

// Contents returns the last copied text.
func (m *Memory) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contents
}

// Copies returns the number of Copy calls.
func (m *Memory) Copies() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copies
}

var _ Copier = System{}
var _ Copier = (*Memory)(nil)
