package viewer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simakma5/latex-cli/internal/clipboard"
)

// Run decodes an artifact from r and displays it in a borderless, floating
// window until the user dismisses it. It must be called from the main
// goroutine of the viewer process.
func Run(r io.Reader, clip clipboard.Copier) error {
	p, err := decodePayload(r)
	if err != nil {
		return err
	}

	img, err := png.Decode(bytes.NewReader(p.Image))
	if err != nil {
		return fmt.Errorf("decode bitmap: %w", err)
	}

	w := p.Width + 2*p.Margin
	h := p.Height + 2*p.Margin

	ebiten.SetWindowTitle("latex-cli preview")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(w, h)
	centerWindow(w, h)

	win := &window{
		page:   ebiten.NewImageFromImage(img),
		text:   p.Text,
		margin: p.Margin,
		width:  w,
		height: h,
		clip:   clip,
		menu:   &contextMenu{},
	}
	return ebiten.RunGame(win)
}

// centerWindow positions the window in the middle of the monitor.
func centerWindow(w, h int) {
	sw, sh := ebiten.Monitor().Size()
	if sw <= 0 || sh <= 0 {
		return
	}
	ebiten.SetWindowPosition((sw-w)/2, (sh-h)/2)
}

// window is the ebiten game showing a single rendered page.
type window struct {
	page   *ebiten.Image
	text   string
	margin int
	width  int
	height int
	clip   clipboard.Copier
	menu   *contextMenu
}

// Update handles dismissal and the context menu.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		w.menu.openAt(mx, my, w.width, w.height)
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && w.menu.visible {
		switch w.menu.hit(mx, my) {
		case actionCopyText:
			// Copy failures are not fatal to the viewer.
			_ = w.clip.Copy(w.text)
			w.menu.close()
		case actionClose:
			return ebiten.Termination
		default:
			w.menu.close()
		}
	}

	return nil
}

// Draw paints the white margin, the page bitmap, and the menu.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w.margin), float64(w.margin))
	screen.DrawImage(w.page, op)

	w.menu.draw(screen)
}

// Layout reports the fixed logical screen size.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
