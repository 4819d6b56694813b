// Package endgame enumerates minimal winning end-game boards: a fixed
// 3-cell winning skeleton combined with every safe way the losing player
// could have placed 2 or 3 filler moves. Generation of 7-9 move wins and
// of drawn end-games is an open extension point, not implemented here.
package endgame

import "movetree/pkg/board"

// the 8 canonical win shapes: 3 columns, 3 rows, 2 diagonals
var _skeletonCells = [8][3]board.Position{
	{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 0, Row: 2}},
	{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}},
	{{Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}},
	{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}},
	{{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 2}},
	{{Col: 0, Row: 2}, {Col: 1, Row: 1}, {Col: 2, Row: 0}},
}

// Skeleton builds one canonical winning shape for the player:
// exactly 3 cells set on an otherwise empty board
func Skeleton(winner board.Player, cells [3]board.Position) board.Board {
	var b board.Board
	for _, pos := range cells {
		b, _ = b.ApplyMove(board.Move{Pos: pos, Player: winner})
	}
	return b
}

// Skeletons returns all 8 canonical winning skeletons for the player
func Skeletons(winner board.Player) []board.Board {
	boards := make([]board.Board, len(_skeletonCells))
	for i, cells := range _skeletonCells {
		boards[i] = Skeleton(winner, cells)
	}
	return boards
}
