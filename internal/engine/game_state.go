package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return g.IsInCheck(colour) && !g.HasLegalMoves(colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return !g.IsInCheck(colour) && !g.HasLegalMoves(colour)
}

// evaluateTerminal classifies the position for colour, the side to move.
func (g *Game) evaluateTerminal(colour chess.Colour) Status {
	if g.HasLegalMoves(colour) {
		return InProgress
	}
	if g.IsInCheck(colour) {
		return Checkmate
	}
	return Stalemate
}
