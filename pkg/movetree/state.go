package movetree

import "movetree/pkg/board"

// GameState is the content of one tree node: the exact sequence of plays
// so far and the cells still open. Always |Played| + |Open| == 9, and the
// two never share a position.
type GameState struct {
	Played []board.Move
	Open   []board.Position
}

// NewGameState is the root state: nothing played, all 9 cells open
func NewGameState() GameState {
	return GameState{
		Played: nil,
		Open:   board.AllPositions(),
	}
}

// LastPlayer is the acting player of the most recent move,
// None when nothing has been played yet
func (s GameState) LastPlayer() board.Player {
	if len(s.Played) == 0 {
		return board.None
	}
	return s.Played[len(s.Played)-1].Player
}

// Winner over the played sequence, delegates to the board model
func (s GameState) Winner() (board.Player, bool) {
	return board.Winner(s.Played)
}

// play returns the successor state with 'mv' appended and its position
// removed from the open set. Slices are freshly allocated, parent and
// child never alias.
func (s GameState) play(mv board.Move) GameState {
	played := make([]board.Move, len(s.Played)+1)
	copy(played, s.Played)
	played[len(s.Played)] = mv

	open := make([]board.Position, 0, len(s.Open)-1)
	for _, pos := range s.Open {
		if pos != mv.Pos {
			open = append(open, pos)
		}
	}

	return GameState{Played: played, Open: open}
}
