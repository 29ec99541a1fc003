package world

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions
	DefaultWidth  = 20
	DefaultHeight = 15

	// HallwayName is reported for cells outside every named room.
	HallwayName = "Hallway"

	minSize = 3 // Smallest grid that still has an interior cell
)

// ErrGridTooSmall is returned when a grid cannot hold an interior floor cell.
var ErrGridTooSmall = errors.New("grid too small")

// Grid is the passability map. It is immutable after construction.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
	rooms  []Room
}

// NewGrid creates a grid with border walls and the school layout.
func NewGrid(width, height int) (*Grid, error) {
	if width < minSize || height < minSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, width, height, minSize, minSize)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}

	g := &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
	g.buildBorder()
	g.buildSchool()
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within [0,width) x [0,height).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsBlocked returns true if p is outside the grid or holds a wall.
func (g *Grid) IsBlocked(p Position) bool {
	return !g.Tile(p).IsPassable()
}

// Tile returns the tile at p. Out-of-range positions read as walls.
func (g *Grid) Tile(p Position) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[p.Y][p.X]
}

// Cells returns a copy of the tile rows.
func (g *Grid) Cells() [][]Tile {
	cells := make([][]Tile, g.height)
	for y := range g.tiles {
		cells[y] = append([]Tile(nil), g.tiles[y]...)
	}
	return cells
}

// RoomAt returns the name of the room containing p, or HallwayName.
func (g *Grid) RoomAt(p Position) string {
	for _, room := range g.rooms {
		if room.Contains(p) {
			return room.Name
		}
	}
	return HallwayName
}

// buildBorder walls off the outer ring.
func (g *Grid) buildBorder() {
	for x := 0; x < g.width; x++ {
		g.tiles[0][x] = TileWall
		g.tiles[g.height-1][x] = TileWall
	}
	for y := 0; y < g.height; y++ {
		g.tiles[y][0] = TileWall
		g.tiles[y][g.width-1] = TileWall
	}
}

// buildSchool places the classroom (top-left) and the gym (bottom-right).
// Grids smaller than the default keep only their border.
func (g *Grid) buildSchool() {
	if g.width < DefaultWidth || g.height < DefaultHeight {
		return
	}

	// Classroom: wall on column 6 and row 6, door at (5,6)
	g.carveVerticalWall(6, 1, 6)
	g.carveHorizontalWall(6, 1, 6)
	g.tiles[6][5] = TileFloor
	g.rooms = append(g.rooms, Room{Name: "Classroom", X: 1, Y: 1, Width: 5, Height: 5})

	// Gym: wall on column 16 and row 11, door at (17,11)
	g.carveVerticalWall(16, 11, g.height-2)
	g.carveHorizontalWall(11, 16, g.width-2)
	g.tiles[11][17] = TileFloor
	g.rooms = append(g.rooms, Room{
		Name:   "Gym",
		X:      17,
		Y:      12,
		Width:  g.width - 18,
		Height: g.height - 13,
	})
}

// carveVerticalWall places walls on column x from y1 to y2 inclusive.
func (g *Grid) carveVerticalWall(x, y1, y2 int) {
	for y := y1; y <= y2; y++ {
		g.tiles[y][x] = TileWall
	}
}

// carveHorizontalWall places walls on row y from x1 to x2 inclusive.
func (g *Grid) carveHorizontalWall(y, x1, x2 int) {
	for x := x1; x <= x2; x++ {
		g.tiles[y][x] = TileWall
	}
}
