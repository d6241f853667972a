package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Mover is anything that applies candidate moves, such as *engine.Game.
type Mover interface {
	PlayPair(mp chess.MovePair) error
}

// PlayMoves applies moves in coordinate notation ("e2e4", "e7e8n") in
// order, stopping at the first move that fails to parse or is rejected.
func PlayMoves(g Mover, moves ...string) error {
	for i, s := range moves {
		mp, err := chess.ParseMovePair(s)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := g.PlayPair(mp); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// MustPlay applies moves like PlayMoves and calls t.Fatal on the first
// failure. Use this in test setup where every move must be legal.
func MustPlay(t testing.TB, g Mover, moves ...string) {
	t.Helper()
	if err := PlayMoves(g, moves...); err != nil {
		t.Fatalf("playing %v: %v", moves, err)
	}
}

// MustMove parses a move in coordinate notation, calling t.Fatal if it is
// malformed.
func MustMove(t testing.TB, s string) chess.MovePair {
	t.Helper()
	mp, err := chess.ParseMovePair(s)
	if err != nil {
		t.Fatalf("ParseMovePair(%q): %v", s, err)
	}
	return mp
}

// MoveStrings returns the coordinate notation of each move.
func MoveStrings(moves []chess.MovePair) []string {
	out := make([]string, len(moves))
	for i, mp := range moves {
		out[i] = mp.String()
	}
	return out
}
