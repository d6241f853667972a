package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isRowClear checks that every square strictly between fromCol and toCol
// on row is empty.
func isRowClear(board *chess.Board, row, fromCol, toCol int) bool {
	step := sign(toCol - fromCol)
	for col := fromCol + step; col != toCol; col += step {
		if !board.OccupantAt(row, col).IsEmpty() {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1 to step from one column toward another.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
