package board

import (
	"errors"
	"math/rand"
	"testing"
)

func TestWinnerColumn(t *testing.T) {
	// Column 0 fully occupied by cross after 5 moves
	moves := []Move{
		{Pos: Position{Col: 0, Row: 0}, Player: Cross},
		{Pos: Position{Col: 1, Row: 1}, Player: Circle},
		{Pos: Position{Col: 0, Row: 1}, Player: Cross},
		{Pos: Position{Col: 1, Row: 0}, Player: Circle},
		{Pos: Position{Col: 0, Row: 2}, Player: Cross},
	}

	winner, ok := Winner(moves)
	if !ok || winner != Cross {
		t.Fatalf("expected cross to win, got %v (ok=%v)", winner, ok)
	}
}

func TestWinnerAllTriplets(t *testing.T) {
	lines := [][3]Position{
		{{0, 0}, {0, 1}, {0, 2}}, // columns
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}}, // rows
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}}, // diagonals
		{{0, 2}, {1, 1}, {2, 0}},
	}

	for i, line := range lines {
		var moves []Move
		for _, pos := range line {
			moves = append(moves, Move{Pos: pos, Player: Circle})
		}
		if winner, ok := Winner(moves); !ok || winner != Circle {
			t.Errorf("line %d: expected circle win, got %v (ok=%v)", i, winner, ok)
		}
	}
}

func TestWinnerNone(t *testing.T) {
	moves := []Move{
		{Pos: Position{Col: 0, Row: 0}, Player: Cross},
		{Pos: Position{Col: 1, Row: 1}, Player: Circle},
		{Pos: Position{Col: 2, Row: 2}, Player: Cross},
	}
	if winner, ok := Winner(moves); ok {
		t.Fatalf("expected no winner, got %v", winner)
	}
	if winner, ok := Winner(nil); ok {
		t.Fatalf("expected no winner on empty board, got %v", winner)
	}
}

func TestApplyMoveOccupied(t *testing.T) {
	var b Board
	b, err := b.ApplyMove(Move{Pos: Position{Col: 1, Row: 1}, Player: Cross})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = b.ApplyMove(Move{Pos: Position{Col: 1, Row: 1}, Player: Circle}); !errors.Is(err, ErrOccupiedCell) {
		t.Fatalf("expected ErrOccupiedCell, got %v", err)
	}

	// The failed apply must not have touched the cell
	if got := b.At(Position{Col: 1, Row: 1}); got != Cross {
		t.Fatalf("cell changed by failed apply, got %v", got)
	}
}

func TestAvailableMoves(t *testing.T) {
	var b Board
	if got := len(b.AvailableMoves()); got != 9 {
		t.Fatalf("empty board should have 9 open cells, got %d", got)
	}

	b, _ = b.ApplyMove(Move{Pos: Position{Col: 2, Row: 0}, Player: Cross})
	open := b.AvailableMoves()
	if len(open) != 8 {
		t.Fatalf("expected 8 open cells, got %d", len(open))
	}
	for _, pos := range open {
		if pos == (Position{Col: 2, Row: 0}) {
			t.Fatal("played cell still listed as open")
		}
	}
}

func fullBoard(t *testing.T) Board {
	t.Helper()

	// x o x / x o o / o x x row by row, a drawn position
	var b Board
	var err error
	cross := []Position{{0, 0}, {2, 0}, {0, 1}, {1, 2}, {2, 2}}
	circle := []Position{{1, 0}, {1, 1}, {2, 1}, {0, 2}}
	for _, pos := range cross {
		if b, err = b.ApplyMove(Move{Pos: pos, Player: Cross}); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	for _, pos := range circle {
		if b, err = b.ApplyMove(Move{Pos: pos, Player: Circle}); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return b
}

func TestFullBoard(t *testing.T) {
	b := fullBoard(t)
	if !b.Full() {
		t.Fatal("board should be full")
	}
	if got := b.AvailableMoves(); len(got) != 0 {
		t.Fatalf("full board should have no open cells, got %v", got)
	}
	if winner, ok := b.Winner(); ok {
		t.Fatalf("setup board should be winnerless, got %v", winner)
	}
}

func TestBoardString(t *testing.T) {
	var b Board
	b, _ = b.ApplyMove(Move{Pos: Position{Col: 0, Row: 0}, Player: Cross})
	b, _ = b.ApplyMove(Move{Pos: Position{Col: 1, Row: 0}, Player: Circle})
	b, _ = b.ApplyMove(Move{Pos: Position{Col: 2, Row: 1}, Player: Cross})

	want := "x | o |  \n  |   | x\n  |   |  "
	if got := b.String(); got != want {
		t.Fatalf("board string mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRandValidMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var b Board
	pos, err := RandValidMove(b, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Occupied(pos) {
		t.Fatalf("random move targets an occupied cell: %v", pos)
	}

	if _, err = RandValidMove(fullBoard(t), rng); !errors.Is(err, ErrNoMovesAvailable) {
		t.Fatalf("expected ErrNoMovesAvailable, got %v", err)
	}
}

func TestRandomPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		moves, winner := RandomPlayout(Cross, rng)

		// The sequence must be legal and strictly alternating
		b, err := Board{}.After(moves)
		if err != nil {
			t.Fatalf("illegal playout sequence: %v", err)
		}
		for j, mv := range moves {
			want := Cross
			if j%2 == 1 {
				want = Circle
			}
			if mv.Player != want {
				t.Fatalf("move %d played by %v, want %v", j, mv.Player, want)
			}
		}

		got, ok := b.Winner()
		if ok != (winner != None) || got != winner {
			t.Fatalf("reported winner %v does not match board winner %v (ok=%v)", winner, got, ok)
		}
		if winner == None && !b.Full() {
			t.Fatal("drawn playout left the board unfinished")
		}
	}
}
