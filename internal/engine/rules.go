package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial reports whether neither side has enough
// material left to deliver checkmate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board.OccupantAt(row, col)
			if p.IsEmpty() || p.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
				return false
			}

			if p.Colour == chess.White {
				whitePieces = append(whitePieces, p.Kind)
				if p.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(row, col)
				}
			} else {
				blackPieces = append(blackPieces, p.Kind)
				if p.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(row, col)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare reports whether the square at row, col is light. a8 is light.
func isLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}

// InsufficientMaterial reports whether the current position is a dead
// draw by material. It does not end the game.
func (g *Game) InsufficientMaterial() bool {
	return HasInsufficientMaterial(g.board)
}
