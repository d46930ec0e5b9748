package pdf

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// FitzRenderer rasterizes PDFs in process via MuPDF.
type FitzRenderer struct {
	// DPI is the rasterization resolution.
	DPI int
}

// NewFitzRenderer creates a MuPDF-backed renderer.
func NewFitzRenderer(dpi int) *FitzRenderer {
	if dpi <= 0 {
		dpi = 200
	}
	return &FitzRenderer{DPI: dpi}
}

// Render rasterizes the first page and extracts its text.
func (r *FitzRenderer) Render(pdf []byte) (*Artifact, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, fmt.Errorf("%w: open document: %v", ErrRender, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrEmptyDocument
	}

	img, err := doc.ImageDPI(0, float64(r.DPI))
	if err != nil {
		return nil, fmt.Errorf("%w: rasterize page: %v", ErrRender, err)
	}

	text, err := doc.Text(0)
	if err != nil {
		return nil, fmt.Errorf("%w: extract text: %v", ErrRender, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode bitmap: %v", ErrRender, err)
	}

	bounds := img.Bounds()
	return &Artifact{
		PNG:    buf.Bytes(),
		Text:   text,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
