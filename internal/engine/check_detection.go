package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks square.
// Pawns attack their forward diagonals whether or not those squares are
// occupied, so empty squares a king would pass over are judged correctly.
func IsSquareAttacked(board *chess.Board, square chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks
	pawnRow := square.Row - chess.Forward(byColour)
	for dc := -1; dc <= 1; dc += 2 {
		if board.OccupantAt(pawnRow, square.Col+dc).Is(byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, offset := range knightOffsets {
		if board.At(square.Offset(offset[0], offset[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, offset := range kingOffsets {
		if board.At(square.Offset(offset[0], offset[1])).Is(byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if slidingAttack(board, square, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return slidingAttack(board, square, byColour, straightDirs, chess.Rook)
}

// slidingAttack looks along dirs for the first occupant and reports whether
// it is a slider of byColour (the given kind or a queen).
func slidingAttack(board *chess.Board, square chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.Kind) bool {
	for _, dir := range dirs {
		s := square.Offset(dir[0], dir[1])
		for s.InBounds() {
			piece := board.At(s)
			if !piece.IsEmpty() {
				if piece.Is(byColour, slider) || piece.Is(byColour, chess.Queen) {
					return true
				}
				break // Blocked
			}
			s = s.Offset(dir[0], dir[1])
		}
	}
	return false
}
