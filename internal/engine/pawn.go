package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// enPassantTarget returns the square a pawn passed over on a double
// push, or chess.NoSquare for any other move.
func enPassantTarget(piece chess.Piece, from, to chess.Square) chess.Square {
	if piece.Kind != chess.Pawn || abs(to.Row-from.Row) != 2 {
		return chess.NoSquare
	}
	return chess.Sq((from.Row+to.Row)/2, from.Col)
}

// isPromotionMove reports whether a pawn of colour moving to to reaches
// its last row.
func isPromotionMove(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == chess.LastRow(piece.Colour)
}
