// Package render draws a game position as text for a terminal, with
// optional ANSI colours.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Theme holds the colour attributes used to draw the board.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	SquareHigh  color.Attribute // Last move source and destination
	SquareCheck color.Attribute // King in check
	White       color.Attribute
	Black       color.Attribute
	Coord       color.Attribute
}

// DefaultTheme is a palette that reads on dark and light terminals.
var DefaultTheme = Theme{
	SquareLight: color.BgHiWhite,
	SquareDark:  color.BgGreen,
	SquareHigh:  color.BgYellow,
	SquareCheck: color.BgRed,
	White:       color.FgHiBlue,
	Black:       color.FgBlack,
	Coord:       color.Bold,
}

// Renderer draws boards. With colour disabled it produces plain text
// regardless of the terminal.
type Renderer struct {
	theme  Theme
	colour bool
}

// New returns a renderer using theme. colour selects ANSI output.
func New(theme Theme, colour bool) *Renderer {
	return &Renderer{theme: theme, colour: colour}
}

// paint returns s wrapped in the given attributes when colour is on.
func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	if !r.colour {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Draw writes the board of g with rank 8 at the top. The last move's
// squares and a checked king are highlighted when colour is on.
func (r *Renderer) Draw(w io.Writer, g *engine.Game) error {
	_, err := io.WriteString(w, r.Board(g))
	return err
}

// Board returns the drawing Draw writes.
func (r *Renderer) Board(g *engine.Game) string {
	board := g.Board()
	last, hasLast := g.LastMove()
	checked := checkedKings(g)

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if r.colour {
			sb.WriteString(r.paint(fmt.Sprintf("%c ", '8'-row), r.theme.Coord))
		} else {
			sb.WriteByte(byte('8' - row))
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p := board.At(sq)

			if !r.colour {
				sb.WriteString(plainCell(p))
				continue
			}

			bg := r.theme.SquareLight
			if (row+col)%2 == 1 {
				bg = r.theme.SquareDark
			}
			if hasLast && (sq == last.From || sq == last.To) {
				bg = r.theme.SquareHigh
			}
			if p.Kind == chess.King && checked[p.Colour] {
				bg = r.theme.SquareCheck
			}
			fg := r.theme.White
			if p.Colour == chess.Black {
				fg = r.theme.Black
			}
			sb.WriteString(r.paint(colourCell(p), bg, fg))
		}
		sb.WriteString("\n")
	}

	if r.colour {
		sb.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(r.paint(fmt.Sprintf(" %c ", 'a'+col), r.theme.Coord))
		}
	} else {
		sb.WriteString(" ")
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(fmt.Sprintf(" %c", 'a'+col))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func plainCell(p chess.Piece) string {
	if p.IsEmpty() {
		return " ."
	}
	return " " + string(p.FENLetter())
}

func colourCell(p chess.Piece) string {
	if p.IsEmpty() {
		return "   "
	}
	return " " + string(p.FENLetter()) + " "
}

func checkedKings(g *engine.Game) map[chess.Colour]bool {
	return map[chess.Colour]bool{
		chess.White: g.IsInCheck(chess.White),
		chess.Black: g.IsInCheck(chess.Black),
	}
}

// StatusLine describes whose turn it is, or how the game ended.
func StatusLine(g *engine.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		loser, _ := g.Checkmated()
		return fmt.Sprintf("Checkmate: %s wins", loser.Opposite())
	case engine.Stalemate:
		return "Stalemate: draw"
	}
	side := g.SideToMove()
	if g.IsInCheck(side) {
		return fmt.Sprintf("%s to move (in check)", side)
	}
	if g.InsufficientMaterial() {
		return fmt.Sprintf("%s to move (insufficient material)", side)
	}
	return fmt.Sprintf("%s to move", side)
}
