package tex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrScratchDir indicates the scratch directory could not be created.
// Without it no compile can ever run, so callers treat it as fatal.
var ErrScratchDir = errors.New("cannot create scratch directory")

// baseName is the fixed stem for the generated source and its byproducts.
const baseName = "_temp"

// transientExts are the compiler byproducts removed after each cycle.
var transientExts = []string{".tex", ".aux", ".log", ".pdf"}

// Workspace is the scratch directory holding the generated .tex file and
// compiler byproducts. It is created lazily and lives for the process.
type Workspace struct {
	// pinned is a fixed directory path; empty selects a temp directory.
	pinned string

	mu   sync.Mutex
	root string
}

// NewWorkspace creates a workspace. If dir is non-empty the scratch
// directory is pinned to that path; otherwise a per-process temporary
// directory is created on first use.
func NewWorkspace(dir string) *Workspace {
	return &Workspace{pinned: dir}
}

// Ensure creates the scratch directory if needed and returns its path.
func (w *Workspace) Ensure() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.root != "" {
		return w.root, nil
	}

	if w.pinned != "" {
		if err := os.MkdirAll(w.pinned, 0o755); err != nil {
			return "", fmt.Errorf("%w: %v", ErrScratchDir, err)
		}
		w.root = w.pinned
		return w.root, nil
	}

	root, err := os.MkdirTemp("", "latex-cli-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScratchDir, err)
	}
	w.root = root
	return w.root, nil
}

// Root returns the scratch directory path, or "" if not yet created.
func (w *Workspace) Root() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// TexPath returns the path of the generated source file.
func (w *Workspace) TexPath() string {
	return filepath.Join(w.Root(), baseName+".tex")
}

// PDFPath returns the path of the compiled PDF.
func (w *Workspace) PDFPath() string {
	return filepath.Join(w.Root(), baseName+".pdf")
}

// Clean removes the transient files from the scratch directory.
// Missing files are not errors; the first removal failure is returned.
func (w *Workspace) Clean() error {
	root := w.Root()
	if root == "" {
		return nil
	}

	var firstErr error
	for _, ext := range transientExts {
		path := filepath.Join(root, baseName+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", path, err)
			}
		}
	}
	return firstErr
}

// Destroy removes the scratch directory and everything in it.
func (w *Workspace) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.root == "" {
		return nil
	}
	root := w.root
	w.root = ""
	return os.RemoveAll(root)
}
