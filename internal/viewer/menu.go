package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// action identifies a context menu entry.
type action int

const (
	actionNone action = iota
	actionCopyText
	actionClose
)

// Menu geometry in pixels.
const (
	menuWidth      = 120
	menuItemHeight = 22
	menuPadding    = 8
)

// menuItems are the entries in display order.
var menuItems = []struct {
	label  string
	action action
}{
	{"Copy Text", actionCopyText},
	{"Close", actionClose},
}

var menuFace = text.NewGoXFace(basicfont.Face7x13)

// contextMenu is the right-click menu drawn over the page.
type contextMenu struct {
	x, y    int
	visible bool
}

// openAt shows the menu at the cursor, clamped to the window bounds.
func (m *contextMenu) openAt(x, y, winW, winH int) {
	menuH := menuItemHeight * len(menuItems)
	if x+menuWidth > winW {
		x = winW - menuWidth
	}
	if y+menuH > winH {
		y = winH - menuH
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.x, m.y = x, y
	m.visible = true
}

// close hides the menu.
func (m *contextMenu) close() {
	m.visible = false
}

// hit returns the action under (x, y), or actionNone.
func (m *contextMenu) hit(x, y int) action {
	if !m.visible || x < m.x || x >= m.x+menuWidth || y < m.y {
		return actionNone
	}
	idx := (y - m.y) / menuItemHeight
	if idx < 0 || idx >= len(menuItems) {
		return actionNone
	}
	return menuItems[idx].action
}

// draw paints the menu if visible.
func (m *contextMenu) draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}

	menuH := menuItemHeight * len(menuItems)

	border := color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	vector.DrawFilledRect(screen,
		float32(m.x-1), float32(m.y-1),
		float32(menuWidth+2), float32(menuH+2),
		border, false)
	vector.DrawFilledRect(screen,
		float32(m.x), float32(m.y),
		float32(menuWidth), float32(menuH),
		color.White, false)

	// Highlight the hovered entry.
	cx, cy := ebiten.CursorPosition()
	if hover := m.hit(cx, cy); hover != actionNone {
		for i, item := range menuItems {
			if item.action != hover {
				continue
			}
			hl := color.RGBA{R: 0xE0, G: 0xE8, B: 0xF5, A: 0xFF}
			vector.DrawFilledRect(screen,
				float32(m.x), float32(m.y+i*menuItemHeight),
				float32(menuWidth), float32(menuItemHeight),
				hl, false)
		}
	}

	for i, item := range menuItems {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(m.x+menuPadding), float64(m.y+i*menuItemHeight+menuPadding/2))
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, item.label, menuFace, op)
	}
}
