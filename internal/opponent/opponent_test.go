package opponent

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"none", None, false},
		{"random", Random, false},
		{"Greedy", Greedy, false},
		{"RANDOM", Random, false},
		{"minimax", None, true},
		{"", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestMode_String(t *testing.T) {
	testutil.AssertEqual(t, Greedy.String(), "greedy")
	testutil.AssertEqual(t, Mode(42).String(), "Mode(42)")
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if p := New(None, rng); p != nil {
		t.Errorf("New(None) = %T; want nil", p)
	}
	if _, ok := New(Random, rng).(*RandomPicker); !ok {
		t.Error("New(Random) is not a *RandomPicker")
	}
	if _, ok := New(Greedy, rng).(*GreedyPicker); !ok {
		t.Error("New(Greedy) is not a *GreedyPicker")
	}
}

func TestPickers_ReturnLegalMoves(t *testing.T) {
	for _, mode := range []Mode{Random, Greedy} {
		t.Run(mode.String(), func(t *testing.T) {
			p := NewSeeded(mode, 7)
			g := engine.NewGame()
			for ply := 0; ply < 60 && !g.IsGameOver(); ply++ {
				mp, ok := p.Pick(g)
				if !ok {
					t.Fatalf("ply %d: Pick() found no move in %s", ply, g.FEN())
				}
				if err := g.PlayPair(mp); err != nil {
					t.Fatalf("ply %d: Pick() = %s, rejected: %v", ply, mp, err)
				}
			}
		})
	}
}

func TestRandomPicker_Deterministic(t *testing.T) {
	play := func(seed int64) []string {
		p := NewSeeded(Random, seed)
		g := engine.NewGame()
		var moves []string
		for ply := 0; ply < 20 && !g.IsGameOver(); ply++ {
			mp, ok := p.Pick(g)
			if !ok {
				break
			}
			moves = append(moves, mp.String())
			if err := g.PlayPair(mp); err != nil {
				t.Fatalf("PlayPair(%s) error: %v", mp, err)
			}
		}
		return moves
	}

	testutil.AssertEqual(t, play(42), play(42))
}

func TestGreedyPicker_TakesMostValuableCapture(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"queen over rook", "4k3/8/8/3q4/8/2N4r/8/4K3 w - - 0 1", "c3d5"},
		{"rook over pawn", "4k3/8/8/8/8/1p1r4/2B5/4K3 w - - 0 1", "c2d3"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6"},
		{"black side", "4k3/8/8/3n4/5Q2/8/8/4K3 b - - 0 1", "d5f4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				mp, ok := NewSeeded(Greedy, seed).Pick(mustFEN(t, tt.fen))
				testutil.AssertTrue(t, ok, "Pick() ok")
				testutil.AssertEqual(t, mp.String(), tt.want, "seed %d", seed)
			}
		})
	}
}

func TestPick_GameOver(t *testing.T) {
	g := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertTrue(t, g.IsGameOver(), "IsGameOver")

	for _, mode := range []Mode{Random, Greedy} {
		if mp, ok := NewSeeded(mode, 1).Pick(g); ok {
			t.Errorf("%v Pick() = %s; want no move after checkmate", mode, mp)
		}
	}
}

func TestCaptureValue(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/3pP3/8/2q5/1P6/4K3 w - d6 0 1")
	board := g.Board()

	tests := []struct {
		move string
		want int
	}{
		{"b2c3", chess.Queen.Value()},
		{"e5d6", chess.Pawn.Value()},
		{"e5e6", 0},
		{"b2b4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			mp, err := chess.ParseMovePair(tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, CaptureValue(g, board, mp), tt.want)
		})
	}
}
