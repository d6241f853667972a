package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// applyMove applies an ordinary (non-castling) move for piece.
// The board is left untouched when the move is rejected.
func (g *Game) applyMove(piece chess.Piece, from, to chess.Square, promotion chess.Kind) error {
	if !containsSquare(PseudoLegalDestinations(g.board, from, g.enPassant), to) {
		return errors.ErrIllegalMove
	}

	record := g.displace(from, to)
	if g.IsInCheck(piece.Colour) {
		g.board.UndoMove(record)
		return errors.ErrSelfCheck
	}

	g.updateRights(record)

	if isPromotionMove(piece, to) {
		g.board.Set(to, chess.Piece{Kind: promotion, Colour: piece.Colour})
		record.Promotion = promotion
	}

	g.enPassant = enPassantTarget(piece, from, to)
	g.finishMove(record)
	return nil
}

// displace moves the piece on from to to, removing a pawn captured en
// passant, and returns the record needed to reverse it. Castling rights
// and the en passant target are left as they were.
func (g *Game) displace(from, to chess.Square) chess.Move {
	piece := g.board.At(from)
	record := chess.Move{
		From:          from,
		To:            to,
		Piece:         piece,
		Captured:      g.board.At(to),
		CapturedAt:    to,
		Rights:        g.rights,
		PrevEnPassant: g.enPassant,
	}

	if piece.Kind == chess.Pawn && to == g.enPassant && isEnPassantVictim(g.board, from, to, piece.Colour) {
		victim := chess.Sq(from.Row, to.Col)
		record.Captured = g.board.At(victim)
		record.CapturedAt = victim
		record.EnPassant = true
		g.board.Set(victim, chess.Empty)
	}

	g.board.Move(from, to)
	return record
}

// simulate plays from -> to on the board, calls fn, and restores the
// board afterwards even if fn panics.
func (g *Game) simulate(from, to chess.Square, fn func()) {
	record := g.displace(from, to)
	defer g.board.UndoMove(record)
	fn()
}

// updateRights marks a king or rook as moved when it leaves its home
// square, and marks a rook captured on its home corner as moved.
func (g *Game) updateRights(m chess.Move) {
	colour := m.Piece.Colour
	switch m.Piece.Kind {
	case chess.King:
		g.rights.SetKingMoved(colour)
	case chess.Rook:
		if side := rookHomeSide(colour, m.From); side != chess.NoCastle {
			g.rights.SetRookMoved(colour, side)
		}
	}

	if m.Captured.Kind == chess.Rook {
		victim := m.Captured.Colour
		if side := rookHomeSide(victim, m.CapturedAt); side != chess.NoCastle {
			g.rights.SetRookMoved(victim, side)
		}
	}
}

// rookHomeSide returns the castling side whose rook starts on sq.
func rookHomeSide(colour chess.Colour, sq chess.Square) chess.CastleSide {
	if sq.Row != chess.HomeRow(colour) {
		return chess.NoCastle
	}
	switch sq.Col {
	case chess.KingsideRookCol:
		return chess.Kingside
	case chess.QueensideRookCol:
		return chess.Queenside
	}
	return chess.NoCastle
}
