package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Algebraic formats a move as the piece letter (empty for pawns), the
// source square, an "x" for captures and the destination square, for
// example "e2e4", "Ng1f3" or "Bb5xc6". Promotions and castling get no
// special marking.
func Algebraic(m chess.Move) string {
	var sb strings.Builder
	sb.WriteString(m.Piece.Kind.Letter())
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// FormatHistory writes the game's moves in algebraic form, one numbered
// line per full move: "1. e2e4 e7e5". A game set up with black to move
// starts with "1. ... e7e5".
func (g *Game) FormatHistory() string {
	var sb strings.Builder
	ply := g.plyOffset
	for i, m := range g.history {
		number := strconv.Itoa(ply/2 + 1)
		switch {
		case ply%2 == 0:
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(number + ". " + Algebraic(m))
		case i == 0:
			sb.WriteString(number + ". ... " + Algebraic(m))
		default:
			sb.WriteString(" " + Algebraic(m))
		}
		ply++
	}
	return sb.String()
}
