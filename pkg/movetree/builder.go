// Package movetree enumerates reachable tic-tac-toe states as an explicit
// tree. A single cursor both grows and walks the tree in one pre-order
// pass: every frontier node is expanded by one child per open cell, the
// acting player alternating, until the requested depth, and a branch stops
// growing once its move sequence already contains a winner.
package movetree

import (
	"time"

	"movetree/pkg/board"
	"movetree/pkg/cursortree"

	"go.uber.org/zap"
)

// A win needs at least 5 total moves, win-testing any earlier
// sequence is pointless
const minWinningMoveCount = 5

// Builder constructs game-state trees, optionally reporting progress
// through a listener and a logger. The zero value is usable.
type Builder struct {
	listener StatsListener
	logger   *zap.Logger
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetListener attaches a progress listener, it shouldn't be a pointer,
// the builder keeps its own copy
func (b *Builder) SetListener(listener StatsListener) *Builder {
	b.listener = listener
	return b
}

// SetLogger attaches a logger for a debug summary after every build
func (b *Builder) SetLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Build grows the full move tree down to maxDepth and returns a cursor at
// its root. Nodes at depth d are expanded while d <= maxDepth and their
// move sequence holds no winner yet. The root, having no fixed first
// player, expands into two children per open cell (one per player); every
// other node appends exactly one alternation-correct child per open cell.
func (b *Builder) Build(maxDepth int) cursortree.Cursor[GameState] {
	var stats BuildStats
	start := time.Now()

	tree := cursortree.New(NewGameState())
	cursor := tree.Root()
	stats.Nodes = 1

	for !cursor.IsEnd() {
		state := cursor.Content()
		d := len(state.Played)

		switch {
		case d > maxDepth:
			// Below the requested depth, leave as a leaf

		case d >= minWinningMoveCount-1 && hasWinner(state):
			// The branch is already decided, stop growing it
			stats.Pruned++

		default:
			cursor = b.expand(cursor, state, &stats)
		}

		cursor = cursor.Next()
	}

	stats.TimeMs = time.Since(start).Milliseconds()
	b.listener.invokeDone(stats)
	if b.logger != nil {
		b.logger.Debug("move tree built",
			zap.Int("max_depth", maxDepth),
			zap.Int("nodes", stats.Nodes),
			zap.Int("expansions", stats.Expansions),
			zap.Int("pruned", stats.Pruned),
			zap.Int64("time_ms", stats.TimeMs),
		)
	}

	return tree.Root()
}

// expand appends the children of one frontier node and returns the cursor,
// still positioned at that node
func (b *Builder) expand(
	cursor cursortree.Cursor[GameState],
	state GameState,
	stats *BuildStats,
) cursortree.Cursor[GameState] {

	prev := state.LastPlayer()
	appended := 0

	for _, pos := range state.Open {
		// At the root prev is None and both players' children are
		// appended, everywhere else exactly one of the two branches fires
		if prev == board.Circle || prev == board.None {
			cursor = cursor.AppendChild(state.play(board.Move{Pos: pos, Player: board.Cross}))
			appended++
		}
		if prev == board.Cross || prev == board.None {
			cursor = cursor.AppendChild(state.play(board.Move{Pos: pos, Player: board.Circle}))
			appended++
		}
	}

	stats.Nodes += appended
	if appended > 0 {
		stats.Expansions++
		if childDepth := len(state.Played) + 1; childDepth > stats.MaxDepth {
			stats.MaxDepth = childDepth
			b.listener.invokeDepth(*stats)
		}
		b.listener.invokeExpand(*stats)
	}

	return cursor
}

func hasWinner(state GameState) bool {
	_, ok := state.Winner()
	return ok
}

// BuildMoveTree builds the move tree with a default Builder and returns
// a cursor at its root, the package's primary entry point
func BuildMoveTree(maxDepth int) cursortree.Cursor[GameState] {
	return NewBuilder().Build(maxDepth)
}
