package board

type Player uint8

const (
	None   Player = 0
	Cross  Player = 1
	Circle Player = 2
)

// Opponent of the player, None maps to None
func (p Player) Opponent() Player {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p Player) String() string {
	switch p {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return " "
}

// Position is one of the 9 (column, row) cells of the board,
// both coordinates in [0, 2]. Comparable, so it can be a map key.
type Position struct {
	Col int
	Row int
}

// Bit index of the position in the column-major bitboard layout
func (p Position) Index() int {
	return 3*p.Col + p.Row
}

// Move is a position paired with the player occupying it
type Move struct {
	Pos    Position
	Player Player
}

// AllPositions returns every cell of the board, in column-major order
func AllPositions() []Position {
	positions := make([]Position, 0, 9)
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			positions = append(positions, Position{Col: col, Row: row})
		}
	}
	return positions
}
