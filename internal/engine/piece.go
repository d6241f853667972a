package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offsets and directions as (row, col) deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// PseudoLegalDestinations returns the squares the piece on from can move
// to according to its movement geometry, blocking and capture rules.
// It does not consider whether the move exposes the mover's own king and
// it never produces castling destinations.
//
// enPassant is the current en passant target (chess.NoSquare if none);
// it is only consulted for pawns.
func PseudoLegalDestinations(board *chess.Board, from chess.Square, enPassant chess.Square) []chess.Square {
	piece := board.At(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(board, from, piece.Colour, enPassant)
	case chess.Knight:
		return stepDestinations(board, from, piece.Colour, knightOffsets)
	case chess.Bishop:
		return slideDestinations(board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slideDestinations(board, from, piece.Colour, straightDirs)
	case chess.Queen:
		return slideDestinations(board, from, piece.Colour, queenDirs)
	case chess.King:
		return stepDestinations(board, from, piece.Colour, kingOffsets)
	}

	return nil
}

// stepDestinations handles the single-step movers (knight and king).
func stepDestinations(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var dests []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		target := board.At(to)
		if target.IsEmpty() || target.Colour != colour {
			dests = append(dests, to)
		}
	}
	return dests
}

// slideDestinations walks each direction until the edge or a blocker,
// including the blocker's square only when it holds an enemy piece.
func slideDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var dests []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := board.At(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					dests = append(dests, to)
				}
				break // Blocked
			}
			dests = append(dests, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return dests
}

// pawnDestinations generates pushes, double pushes from the starting row,
// diagonal captures and the en passant capture.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour, enPassant chess.Square) []chess.Square {
	var dests []chess.Square
	dir := chess.Forward(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.InBounds() && board.At(one).IsEmpty() {
		dests = append(dests, one)
		// Double push from starting row
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnRow(colour) && board.At(two).IsEmpty() {
			dests = append(dests, two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.InBounds() {
			continue
		}
		if board.At(to).IsEnemyOf(colour) {
			dests = append(dests, to)
			continue
		}
		if to == enPassant && isEnPassantVictim(board, from, to, colour) {
			dests = append(dests, to)
		}
	}

	return dests
}

// isEnPassantVictim reports whether a pawn of colour on from may capture
// en passant onto the empty target to: the square beside it on its own
// row must hold an enemy pawn.
func isEnPassantVictim(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !board.At(to).IsEmpty() {
		return false
	}
	return board.At(chess.Sq(from.Row, to.Col)).Is(colour.Opposite(), chess.Pawn)
}
