package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial position", InitialFEN, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "4k3/8/8/8/8/8/8/1N2K3 b - - 0 1", true},
		{"two knights", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"same colour bishops", "2b1k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"opposite colour bishops", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"lone pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"lone rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			if got := g.InsufficientMaterial(); got != tt.want {
				t.Errorf("InsufficientMaterial() = %v; want %v", got, tt.want)
			}
			if got := HasInsufficientMaterial(g.Board()); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestInsufficientMaterial_DoesNotEndGame(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status(), InProgress)
	testutil.AssertFalse(t, g.IsGameOver(), "IsGameOver")
}
