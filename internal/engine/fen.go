package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. The halfmove clock is
// accepted but not tracked. Castling rights not listed are treated as
// lost. The position must have exactly one king per side, no pawns on
// the first or last rank, and the side not to move must not be in check.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("expected 4 to 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	g := &Game{
		board:     chess.NewBoard(),
		enPassant: chess.NoSquare,
	}

	if err := parsePiecePositions(g.board, parts[0]); err != nil {
		return nil, err
	}
	if err := g.parseSideToMove(parts[1]); err != nil {
		return nil, err
	}
	if err := g.parseCastlingRights(parts[2]); err != nil {
		return nil, err
	}
	if err := g.parseEnPassant(parts[3]); err != nil {
		return nil, err
	}
	if err := g.parseClocks(parts[4:]); err != nil {
		return nil, err
	}
	if err := g.validatePosition(); err != nil {
		return nil, err
	}

	g.status = g.evaluateTerminal(g.toMove)
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Sq(row, col), chess.Piece{Kind: kind, Colour: colour})
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (g *Game) parseSideToMove(field string) error {
	switch field {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Every king
// and rook starts out as moved and each listed letter restores one side.
func (g *Game) parseCastlingRights(field string) error {
	g.rights = chess.CastlingRights{
		WhiteKingMoved:          true,
		BlackKingMoved:          true,
		WhiteKingsideRookMoved:  true,
		WhiteQueensideRookMoved: true,
		BlackKingsideRookMoved:  true,
		BlackQueensideRookMoved: true,
	}
	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			g.rights.WhiteKingMoved = false
			g.rights.WhiteKingsideRookMoved = false
		case 'Q':
			g.rights.WhiteKingMoved = false
			g.rights.WhiteQueensideRookMoved = false
		case 'k':
			g.rights.BlackKingMoved = false
			g.rights.BlackKingsideRookMoved = false
		case 'q':
			g.rights.BlackKingMoved = false
			g.rights.BlackQueensideRookMoved = false
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func (g *Game) parseEnPassant(field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	// The target lies behind a pawn of the side that just moved.
	if sq.Row != chess.PawnRow(g.toMove.Opposite())+chess.Forward(g.toMove.Opposite()) {
		return fmt.Errorf("en passant square %s on wrong rank: %w", field, errors.ErrInvalidFEN)
	}
	g.enPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number.
func (g *Game) parseClocks(fields []string) error {
	if len(fields) >= 1 {
		if n, err := strconv.Atoi(fields[0]); err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", fields[0], errors.ErrInvalidFEN)
		}
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", fields[1], errors.ErrInvalidFEN)
		}
		g.plyOffset = 2 * (n - 1)
	}
	if g.toMove == chess.Black {
		g.plyOffset++
	}
	return nil
}

// validatePosition rejects positions play could never reach.
func (g *Game) validatePosition() error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := g.board.Count(c, chess.King); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", c, n, errors.ErrInvalidFEN)
		}
	}
	for col := 0; col < chess.BoardSize; col++ {
		for _, row := range []int{0, chess.BoardSize - 1} {
			if g.board.OccupantAt(row, col).Kind == chess.Pawn {
				return fmt.Errorf("pawn on %s: %w", chess.Sq(row, col), errors.ErrInvalidFEN)
			}
		}
	}
	if g.IsInCheck(g.toMove.Opposite()) {
		return fmt.Errorf("%v is in check but not to move: %w", g.toMove.Opposite(), errors.ErrInvalidFEN)
	}
	return nil
}

// FEN returns the FEN string of the current position. The halfmove clock
// is always written as 0.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	g.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	fmt.Fprintf(&sb, " 0 %d", 1+(g.plyOffset+len(g.history))/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.OccupantAt(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes a letter for each side that may still castle
// with its king and rook on their home squares.
func (g *Game) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if !g.rights.CanCastle(c, side) {
				continue
			}
			home := chess.HomeRow(c)
			if !g.board.At(chess.Sq(home, chess.KingCol)).Is(c, chess.King) ||
				!g.board.At(chess.Sq(home, side.RookFromCol())).Is(c, chess.Rook) {
				continue
			}
			letter := byte('K')
			if side == chess.Queenside {
				letter = 'Q'
			}
			if c == chess.Black {
				letter |= 0x20
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
