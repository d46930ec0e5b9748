// Package pdf converts the first page of a compiled PDF into an in-memory
// bitmap and an associated plain-text extraction.
//
// Two backends are available: MuPDF ("fitz", in-process) and poppler
// ("poppler", pdftoppm/pdftotext subprocesses).
package pdf

import (
	"errors"
	"fmt"
)

// Rendering errors.
var (
	// ErrRender indicates the PDF could not be rasterized.
	ErrRender = errors.New("render failed")

	// ErrEmptyDocument indicates the PDF has no pages.
	ErrEmptyDocument = errors.New("document has no pages")
)

// Artifact is the rendered result for one preview cycle: the first page as
// an encoded bitmap plus its extracted text. It is held only for the
// lifetime of the preview window.
type Artifact struct {
	// PNG is the rasterized first page, PNG-encoded.
	PNG []byte

	// Text is the selectable text extracted from the same page.
	Text string

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int
}

// Renderer produces an Artifact from raw PDF bytes.
type Renderer interface {
	Render(pdf []byte) (*Artifact, error)
}

// NewRenderer creates the renderer backend selected by name.
func NewRenderer(backend string, dpi int) (Renderer, error) {
	switch backend {
	case "fitz":
		return NewFitzRenderer(dpi), nil
	case "poppler":
		return NewPopplerRenderer(dpi)
	default:
		return nil, fmt.Errorf("unknown renderer backend %q", backend)
	}
}
