package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/session"
	"github.com/samdwyer/rpgschool/internal/world"
)

const (
	hudGap  = 1 // Blank rows between map and HUD
	helpKey = "Arrows: move | E: talk | T: type | Esc: quit"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, characters and HUD.
func (r *Renderer) Render(snap session.Snapshot) error {
	r.screen.Clear()

	// Draw map tiles
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			tile := snap.Cells[y][x]
			r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile))
		}
	}

	// Draw characters, then the player on top
	for _, sprite := range snap.NPCs {
		r.drawSprite(sprite)
	}
	r.drawSprite(snap.Player)

	r.drawHUD(snap)

	r.screen.Show()
	return nil
}

// drawSprite draws a character glyph on its tile.
func (r *Renderer) drawSprite(s session.Sprite) {
	style := tcell.StyleDefault.Foreground(s.Color).Bold(true)
	r.screen.SetContent(s.Pos.X, s.Pos.Y, s.Symbol, style)
}

// drawHUD draws status, inventory, location, help and the input field below the map.
func (r *Renderer) drawHUD(snap session.Snapshot) {
	y := snap.Height + hudGap
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.drawText(0, y, snap.Status, white)

	if len(snap.Inventory) > 0 {
		r.drawText(0, y+1, "Inventory: "+strings.Join(snap.Inventory, ", "), tcell.StyleDefault.Foreground(tcell.ColorYellow))
	} else {
		r.drawText(0, y+1, "Inventory: empty", gray)
	}

	r.drawText(0, y+2, snap.Location+" | "+helpKey, gray)

	if snap.Typing {
		field := tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)
		r.drawText(0, y+3, "> "+snap.Input+"_", field)
	}
}

// drawText writes msg starting at (x, y).
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}
