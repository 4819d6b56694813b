package endgame

import "movetree/pkg/board"

// BoardSeq is a lazy, finite, restartable sequence of boards: every
// surviving k-combination of the skeleton's open cells, filled in by the
// losing player. Not safe for concurrent use.
type BoardSeq struct {
	skeleton board.Board
	loser    board.Player
	empty    []board.Position
	k        int
	reject   func([3]board.Position) bool

	comb []int
	done bool
}

// Reset rewinds the sequence to its first board
func (s *BoardSeq) Reset() {
	s.comb = nil
	s.done = false
}

// Next produces the next board, false once the sequence is exhausted
func (s *BoardSeq) Next() (board.Board, bool) {
	for s.advance() {
		var picked [3]board.Position
		for i, idx := range s.comb {
			picked[i] = s.empty[idx]
		}

		if s.reject != nil && s.reject(picked) {
			continue
		}

		b := s.skeleton
		for _, idx := range s.comb {
			b, _ = b.ApplyMove(board.Move{Pos: s.empty[idx], Player: s.loser})
		}
		return b, true
	}

	return board.Board{}, false
}

// advance steps to the next k-combination of indexes into s.empty,
// in lexicographic order, false when all have been produced
func (s *BoardSeq) advance() bool {
	if s.done {
		return false
	}

	n := len(s.empty)
	if s.comb == nil {
		if s.k > n {
			s.done = true
			return false
		}
		s.comb = make([]int, s.k)
		for i := range s.comb {
			s.comb[i] = i
		}
		return true
	}

	for i := s.k - 1; i >= 0; i-- {
		if s.comb[i] < n-s.k+i {
			s.comb[i]++
			for j := i + 1; j < s.k; j++ {
				s.comb[j] = s.comb[j-1] + 1
			}
			return true
		}
	}

	s.done = true
	return false
}

// PermuteTwoOpposingMoves enumerates every unordered pair of the
// skeleton's open cells assigned to the losing player, producing complete
// 5-move end-game boards. Two loser moves can never complete a line, so
// no combination is rejected.
func PermuteTwoOpposingMoves(skeleton board.Board) *BoardSeq {
	winner, _ := skeleton.Winner()
	return &BoardSeq{
		skeleton: skeleton,
		loser:    winner.Opponent(),
		empty:    skeleton.AvailableMoves(),
		k:        2,
	}
}

// PermuteThreeOpposingMoves enumerates every unordered triple of the
// skeleton's open cells assigned to the losing player, rejecting triples
// that would hand the loser its own winning line, producing complete
// 6-move end-game boards.
func PermuteThreeOpposingMoves(skeleton board.Board) *BoardSeq {
	winner, _ := skeleton.Winner()
	winnerCells := occupiedCells(skeleton)

	// With a column skeleton the only reachable loser line is another
	// full column, with a row skeleton another full row. A diagonal
	// skeleton blocks every line a 3-subset of its 6 open cells could
	// form, so nothing is filtered there.
	var reject func([3]board.Position) bool
	switch {
	case sameCol(winnerCells):
		reject = sameCol
	case sameRow(winnerCells):
		reject = sameRow
	}

	return &BoardSeq{
		skeleton: skeleton,
		loser:    winner.Opponent(),
		empty:    skeleton.AvailableMoves(),
		k:        3,
		reject:   reject,
	}
}

func occupiedCells(b board.Board) [3]board.Position {
	var cells [3]board.Position
	i := 0
	for _, pos := range board.AllPositions() {
		if b.Occupied(pos) && i < len(cells) {
			cells[i] = pos
			i++
		}
	}
	return cells
}

func sameCol(cells [3]board.Position) bool {
	return cells[0].Col == cells[1].Col && cells[1].Col == cells[2].Col
}

func sameRow(cells [3]board.Position) bool {
	return cells[0].Row == cells[1].Row && cells[1].Row == cells[2].Row
}
