// Package opponent picks replies for a computer-controlled side. It knows
// nothing about chess beyond the legal moves the engine enumerates.
package opponent

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Mode selects how the opponent chooses moves.
type Mode int

const (
	None   Mode = iota // No computer opponent
	Random             // Uniformly random legal move
	Greedy             // Highest-value capture, else random
)

var modeNames = map[Mode]string{
	None:   "none",
	Random: "random",
	Greedy: "greedy",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return None, errors.Wrapf(errors.ErrInvalidConfig, "unknown opponent %q", s)
}

// Picker chooses a move for the side to move.
type Picker interface {
	// Pick returns a legal move, or false when the side to move has none.
	Pick(g *engine.Game) (chess.MovePair, bool)
}

// New returns the picker for mode, drawing randomness from rng.
// None has no picker and returns nil.
func New(mode Mode, rng *rand.Rand) Picker {
	switch mode {
	case Random:
		return &RandomPicker{rng: rng}
	case Greedy:
		return &GreedyPicker{rng: rng}
	default:
		return nil
	}
}

// NewSeeded is New with a generator seeded from seed.
func NewSeeded(mode Mode, seed int64) Picker {
	return New(mode, rand.New(rand.NewSource(seed)))
}

// RandomPicker plays a uniformly random legal move.
type RandomPicker struct {
	rng *rand.Rand
}

// Pick implements Picker.
func (p *RandomPicker) Pick(g *engine.Game) (chess.MovePair, bool) {
	if g.IsGameOver() {
		return chess.MovePair{}, false
	}
	moves := g.LegalMoves(g.SideToMove())
	if len(moves) == 0 {
		return chess.MovePair{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}

// GreedyPicker takes the capture of highest material value, choosing at
// random among equal captures. With no capture available it plays a
// random move.
type GreedyPicker struct {
	rng *rand.Rand
}

// Pick implements Picker.
func (p *GreedyPicker) Pick(g *engine.Game) (chess.MovePair, bool) {
	if g.IsGameOver() {
		return chess.MovePair{}, false
	}
	moves := g.LegalMoves(g.SideToMove())
	if len(moves) == 0 {
		return chess.MovePair{}, false
	}

	board := g.Board()
	best := 0
	var candidates []chess.MovePair
	for _, mp := range moves {
		v := CaptureValue(g, board, mp)
		switch {
		case v > best:
			best = v
			candidates = append(candidates[:0], mp)
		case v == best && v > 0:
			candidates = append(candidates, mp)
		}
	}
	if len(candidates) == 0 {
		candidates = moves
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

// CaptureValue returns the material value taken by mp, counting an en
// passant capture as a pawn. Non-captures are worth 0.
func CaptureValue(g *engine.Game, board *chess.Board, mp chess.MovePair) int {
	if victim := board.At(mp.To); !victim.IsEmpty() {
		return victim.Kind.Value()
	}
	if ep, ok := g.EnPassantTarget(); ok && mp.To == ep && board.At(mp.From).Kind == chess.Pawn {
		return chess.Pawn.Value()
	}
	return 0
}
