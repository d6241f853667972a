package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalDestinations returns the squares the piece on from may legally
// move to: its pseudo-legal destinations that do not leave its own king
// in check, plus the king's castling destinations when castling is
// currently allowed. Squares holding a king are never included.
// An empty or off-board square has no destinations.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	piece := g.board.At(from)
	if piece.IsEmpty() {
		return nil
	}

	// En passant is only available to the side to move.
	enPassant := chess.NoSquare
	if piece.Colour == g.toMove {
		enPassant = g.enPassant
	}

	var dests []chess.Square
	for _, to := range PseudoLegalDestinations(g.board, from, enPassant) {
		if g.board.At(to).Kind == chess.King {
			continue
		}
		if g.isSafe(from, to, piece.Colour, enPassant) {
			dests = append(dests, to)
		}
	}

	if piece.Kind == chess.King {
		dests = append(dests, g.castlingDestinations(piece.Colour)...)
	}
	return dests
}

// isSafe reports whether moving from -> to leaves colour's king out of check.
func (g *Game) isSafe(from, to chess.Square, colour chess.Colour, enPassant chess.Square) bool {
	saved := g.enPassant
	g.enPassant = enPassant
	defer func() { g.enPassant = saved }()

	safe := false
	g.simulate(from, to, func() {
		safe = !g.IsInCheck(colour)
	})
	return safe
}

// LegalMoves returns every legal move for colour. A pawn move onto the
// last row appears once per promotion kind.
func (g *Game) LegalMoves(colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	g.forEachPiece(colour, func(from chess.Square, piece chess.Piece) bool {
		for _, to := range g.LegalDestinations(from) {
			if isPromotionMove(piece, to) {
				for _, kind := range chess.PromotionKinds {
					moves = append(moves, chess.MovePair{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) bool {
	found := false
	g.forEachPiece(colour, func(from chess.Square, _ chess.Piece) bool {
		found = len(g.LegalDestinations(from)) > 0
		return !found
	})
	return found
}

// forEachPiece calls fn for every piece of colour in row-major order
// until fn returns false.
func (g *Game) forEachPiece(colour chess.Colour, fn func(chess.Square, chess.Piece) bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.OccupantAt(row, col)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if !fn(chess.Sq(row, col), piece) {
				return
			}
		}
	}
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
