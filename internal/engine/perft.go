package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree depth plies deep
// from the game's current position. The game is not modified.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(g.Clone(), depth)
}

func perft(g *Game, depth int) uint64 {
	moves := g.LegalMoves(g.toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, mp := range moves {
		mustPlay(g, mp)
		nodes += perft(g, depth-1)
		g.mustUndo()
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move in coordinate notation.
func Divide(g *Game, depth int) map[string]uint64 {
	g = g.Clone()
	counts := make(map[string]uint64)
	for _, mp := range g.LegalMoves(g.toMove) {
		if depth <= 1 {
			counts[mp.String()] = 1
			continue
		}
		mustPlay(g, mp)
		counts[mp.String()] = perft(g, depth-1)
		g.mustUndo()
	}
	return counts
}

// mustPlay applies a move produced by LegalMoves. Rejection means move
// generation and validation disagree.
func mustPlay(g *Game, mp chess.MovePair) {
	if err := g.PlayPair(mp); err != nil {
		panic("engine: generated move rejected: " + err.Error())
	}
}

func (g *Game) mustUndo() {
	if err := g.UndoLastMove(); err != nil {
		panic("engine: " + err.Error())
	}
}
