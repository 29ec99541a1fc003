package world

// Room represents a named rectangular area of the map.
type Room struct {
	Name          string
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Contains returns true if the given position is inside the room.
func (r Room) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
