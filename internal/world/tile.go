// Package world provides the tile grid and map layout.
package world

// Tile is the code stored in a single grid cell.
type Tile uint8

const (
	// TileFloor represents a passable floor tile.
	TileFloor Tile = 0
	// TileWall represents an impassable wall tile.
	TileWall Tile = 1
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	default:
		return '?'
	}
}
