package world

// Position is a (column, row) cell address on the grid.
type Position struct {
	X, Y int
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four orthogonal neighbours.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the orthogonal directions in adjacency scan order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{X: 0, Y: -1}
	case Down:
		return Position{X: 0, Y: 1}
	case Left:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
