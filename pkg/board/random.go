package board

import "math/rand"

// RandValidMove picks a uniformly random open cell,
// ErrNoMovesAvailable when the board is full
func RandValidMove(b Board, rng *rand.Rand) (Position, error) {
	open := b.AvailableMoves()
	if len(open) == 0 {
		return Position{}, ErrNoMovesAvailable
	}
	return open[rng.Intn(len(open))], nil
}

// RandomPlayout plays random moves from the empty board, alternating
// from 'first', until somebody wins or the board fills up.
// Returns the full move sequence and the winner (None on a draw).
func RandomPlayout(first Player, rng *rand.Rand) ([]Move, Player) {
	var b Board
	moves := make([]Move, 0, 9)
	turn := first

	for !b.Full() {
		pos, err := RandValidMove(b, rng)
		if err != nil {
			break
		}

		mv := Move{Pos: pos, Player: turn}
		b, _ = b.ApplyMove(mv)
		moves = append(moves, mv)

		if winner, ok := b.Winner(); ok {
			return moves, winner
		}
		turn = turn.Opponent()
	}

	return moves, None
}
