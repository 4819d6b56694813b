// Package render is a small presentation layer over boards and move trees,
// colored through termenv when the terminal supports it.
package render

import (
	"fmt"
	"io"
	"strings"

	"movetree/pkg/board"
	"movetree/pkg/cursortree"
	"movetree/pkg/movetree"

	"github.com/muesli/termenv"
)

const (
	_crossColor  = "9"  // bright red
	_circleColor = "12" // bright blue
)

type Renderer struct {
	profile termenv.Profile
}

// NewRenderer detects the terminal's color profile
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// NewPlainRenderer never emits escape sequences, for files and tests
func NewPlainRenderer() *Renderer {
	return &Renderer{profile: termenv.Ascii}
}

// Cell is the player's glyph, colored per player
func (r *Renderer) Cell(p board.Player) string {
	switch p {
	case board.Cross:
		return termenv.String(p.String()).Foreground(r.profile.Color(_crossColor)).String()
	case board.Circle:
		return termenv.String(p.String()).Foreground(r.profile.Color(_circleColor)).String()
	}
	return p.String()
}

// Board renders one row per line, cells joined with " | "
func (r *Renderer) Board(b board.Board) string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteString(r.Cell(b.At(board.Position{Col: col, Row: row})))
		}
	}
	return builder.String()
}

// Tree writes the whole move tree, one indented line per node showing
// the node's last move
func (r *Renderer) Tree(w io.Writer, root cursortree.Cursor[movetree.GameState]) error {
	for cursor := root; !cursor.IsEnd(); cursor = cursor.Next() {
		line := strings.Repeat("  ", cursor.Depth()) + r.node(cursor.Content())
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) node(state movetree.GameState) string {
	if len(state.Played) == 0 {
		return "root"
	}
	last := state.Played[len(state.Played)-1]
	return fmt.Sprintf("%s(%d,%d)", r.Cell(last.Player), last.Pos.Col, last.Pos.Row)
}
