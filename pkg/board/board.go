package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	_fullMask uint16 = 0b111111111
)

var (
	// Move targets an already filled cell, a caller contract violation
	ErrOccupiedCell = errors.New("cell already occupied")

	// The board is full, no move can be forced
	ErrNoMovesAvailable = errors.New("no moves available")
)

// horizontal, vertical and diagonal patterns as bitboards,
// bit i is cell (i/3, i%3) in (column, row) coordinates
var _winningBitboardPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Board is an immutable 3x3 grid, held as one bitboard per player.
// The zero value is the empty board, moves produce new values.
type Board struct {
	bitboards [2]uint16
}

// At returns the occupant of the cell, None when empty
func (b Board) At(pos Position) Player {
	bit := uint16(1) << pos.Index()
	if b.bitboards[_bitboardCrossIdx]&bit != 0 {
		return Cross
	}
	if b.bitboards[_bitboardCircleIdx]&bit != 0 {
		return Circle
	}
	return None
}

func (b Board) Occupied(pos Position) bool {
	return b.At(pos) != None
}

func (b Board) Full() bool {
	return b.bitboards[_bitboardCrossIdx]|b.bitboards[_bitboardCircleIdx] == _fullMask
}

// AvailableMoves returns the open cells in column-major order,
// empty when the board is full
func (b Board) AvailableMoves() []Position {
	open := make([]Position, 0, 9)
	for _, pos := range AllPositions() {
		if !b.Occupied(pos) {
			open = append(open, pos)
		}
	}
	return open
}

// ApplyMove returns the board with the move played,
// or ErrOccupiedCell when the target cell is taken
func (b Board) ApplyMove(mv Move) (Board, error) {
	if b.Occupied(mv.Pos) {
		return b, fmt.Errorf("apply %s at (%d,%d): %w", mv.Player, mv.Pos.Col, mv.Pos.Row, ErrOccupiedCell)
	}

	idx := _bitboardCrossIdx
	if mv.Player == Circle {
		idx = _bitboardCircleIdx
	}
	b.bitboards[idx] |= 1 << mv.Pos.Index()
	return b, nil
}

// After applies an ordered sequence of moves on top of the board
func (b Board) After(moves []Move) (Board, error) {
	var err error
	for _, mv := range moves {
		if b, err = b.ApplyMove(mv); err != nil {
			return b, err
		}
	}
	return b, nil
}

// Winner tests all 8 triplets for uniform occupancy,
// the second return is false when nobody has won
func (b Board) Winner() (Player, bool) {
	crossbb := b.bitboards[_bitboardCrossIdx]
	circlebb := b.bitboards[_bitboardCircleIdx]

	for i := range _winningBitboardPatterns {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Cross, true
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Circle, true
		}
	}

	return None, false
}

// Winner reconstructs the board from the played moves and tests
// all 8 triplets. Assumes the sequence is legal, cells set twice
// keep the first occupant's bit and simply overlap.
func Winner(moves []Move) (Player, bool) {
	var b Board
	for _, mv := range moves {
		idx := _bitboardCrossIdx
		if mv.Player == Circle {
			idx = _bitboardCircleIdx
		}
		b.bitboards[idx] |= 1 << mv.Pos.Index()
	}
	return b.Winner()
}

// String renders the board one row per line, cells joined with " | "
func (b Board) String() string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteString(b.At(Position{Col: col, Row: row}).String())
		}
	}
	return builder.String()
}
