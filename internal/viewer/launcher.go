package viewer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/simakma5/latex-cli/internal/pdf"
	"github.com/simakma5/latex-cli/internal/proc"
)

// ViewFlag is the flag that switches the binary into viewer mode.
const ViewFlag = "-view"

// Launcher shows artifacts in a dedicated viewer process.
type Launcher struct {
	// SelfPath is the binary re-invoked with ViewFlag.
	SelfPath string

	// Margin is the white border around the bitmap, in pixels.
	Margin int
}

// NewLauncher creates a launcher that re-invokes the current executable.
func NewLauncher(margin int) (*Launcher, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &Launcher{SelfPath: self, Margin: margin}, nil
}

// Show pipes art to a viewer process and blocks until it is dismissed.
func (l *Launcher) Show(ctx context.Context, art *pdf.Artifact) error {
	data, err := encodePayload(art, l.Margin)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	cmd := exec.CommandContext(ctx, l.SelfPath, ViewFlag)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	p, err := proc.Start("viewer", cmd)
	if err != nil {
		return err
	}

	<-p.Done()

	if code := p.ExitCode(); code != 0 {
		return fmt.Errorf("viewer exited with code %d", code)
	}
	return nil
}
