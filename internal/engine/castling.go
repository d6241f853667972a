package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// castleSide reports which castling move a king step from -> to requests.
// A king moving exactly two columns along its own home row is a castling
// attempt; anything else is an ordinary move.
func castleSide(piece chess.Piece, from, to chess.Square) chess.CastleSide {
	if piece.Kind != chess.King {
		return chess.NoCastle
	}
	home := chess.HomeRow(piece.Colour)
	if from.Row != home || to.Row != home || abs(to.Col-from.Col) != 2 {
		return chess.NoCastle
	}
	if to.Col > from.Col {
		return chess.Kingside
	}
	return chess.Queenside
}

// canCastle checks every castling condition for colour on side: neither
// the king nor that rook has moved, both stand on their home squares,
// the squares between them are empty, the king is not in check, and the
// squares the king crosses and lands on are not attacked.
func (g *Game) canCastle(colour chess.Colour, side chess.CastleSide) bool {
	if !g.rights.CanCastle(colour, side) {
		return false
	}

	home := chess.HomeRow(colour)
	king := chess.Sq(home, chess.KingCol)
	rook := chess.Sq(home, side.RookFromCol())
	if !g.board.At(king).Is(colour, chess.King) || !g.board.At(rook).Is(colour, chess.Rook) {
		return false
	}
	if !isRowClear(g.board, home, king.Col, rook.Col) {
		return false
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(g.board, king, enemy) {
		return false
	}
	step := sign(side.KingDestCol() - chess.KingCol)
	for col := chess.KingCol + step; ; col += step {
		if IsSquareAttacked(g.board, chess.Sq(home, col), enemy) {
			return false
		}
		if col == side.KingDestCol() {
			break
		}
	}
	return true
}

// castle moves the king two squares toward the rook and the rook to the
// square the king crossed.
func (g *Game) castle(colour chess.Colour, side chess.CastleSide) error {
	if !g.canCastle(colour, side) {
		return errors.ErrCastlingDenied
	}

	home := chess.HomeRow(colour)
	from := chess.Sq(home, chess.KingCol)
	to := chess.Sq(home, side.KingDestCol())
	record := chess.Move{
		From:          from,
		To:            to,
		Piece:         g.board.At(from),
		CapturedAt:    chess.NoSquare,
		Castle:        side,
		Rights:        g.rights,
		PrevEnPassant: g.enPassant,
	}

	g.board.Move(from, to)
	g.board.Move(chess.Sq(home, side.RookFromCol()), chess.Sq(home, side.RookDestCol()))

	g.rights.SetKingMoved(colour)
	g.rights.SetRookMoved(colour, side)
	g.enPassant = chess.NoSquare
	g.finishMove(record)
	return nil
}

// castlingDestinations returns the king destinations for every castling
// move colour may currently make.
func (g *Game) castlingDestinations(colour chess.Colour) []chess.Square {
	var dests []chess.Square
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if g.canCastle(colour, side) {
			dests = append(dests, chess.Sq(chess.HomeRow(colour), side.KingDestCol()))
		}
	}
	return dests
}
