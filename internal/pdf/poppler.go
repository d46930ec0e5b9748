package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// PopplerRenderer rasterizes PDFs with the poppler command-line tools
// (pdftoppm for the bitmap, pdftotext for the text extraction).
type PopplerRenderer struct {
	// DPI is the rasterization resolution.
	DPI int
}

// NewPopplerRenderer creates a poppler-backed renderer.
// It fails if the poppler tools are not installed.
func NewPopplerRenderer(dpi int) (*PopplerRenderer, error) {
	if dpi <= 0 {
		dpi = 200
	}
	r := &PopplerRenderer{DPI: dpi}
	if !r.Available() {
		return nil, fmt.Errorf("poppler tools not found: install poppler (pdftoppm, pdftotext)")
	}
	return r, nil
}

// Available reports whether the poppler tools are installed.
func (r *PopplerRenderer) Available() bool {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return false
	}
	_, err := exec.LookPath("pdftotext")
	return err == nil
}

// Render rasterizes the first page and extracts its text.
func (r *PopplerRenderer) Render(pdf []byte) (*Artifact, error) {
	tempDir, err := os.MkdirTemp("", "latex-cli-render-*")
	if err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "page.pdf")
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("write temp PDF: %w", err)
	}

	outBase := filepath.Join(tempDir, "page")
	toppm := exec.Command("pdftoppm",
		"-png",
		"-singlefile",
		"-r", strconv.Itoa(r.DPI),
		"-f", "1", "-l", "1",
		pdfPath, outBase,
	)
	var toppmErr bytes.Buffer
	toppm.Stderr = &toppmErr
	if err := toppm.Run(); err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %v\n%s", ErrRender, err, toppmErr.String())
	}

	data, err := os.ReadFile(outBase + ".png")
	if err != nil {
		// pdftoppm writes nothing for an empty document.
		return nil, ErrEmptyDocument
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode bitmap: %v", ErrRender, err)
	}

	totext := exec.Command("pdftotext", "-f", "1", "-l", "1", pdfPath, "-")
	var text, totextErr bytes.Buffer
	totext.Stdout = &text
	totext.Stderr = &totextErr
	if err := totext.Run(); err != nil {
		return nil, fmt.Errorf("%w: pdftotext: %v\n%s", ErrRender, err, totextErr.String())
	}

	return &Artifact{
		PNG:    data,
		Text:   text.String(),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
