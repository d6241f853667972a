package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/opponent"
)

// OpponentConfig holds settings for the computer opponent.
type OpponentConfig struct {
	// Mode selects the move picker; None disables the opponent.
	Mode opponent.Mode

	// Colour is the side the opponent plays.
	Colour chess.Colour

	// Seed seeds the picker's random source. Zero means pick one at startup.
	Seed int64
}

// NewOpponentConfig creates an OpponentConfig with default values.
func NewOpponentConfig() *OpponentConfig {
	return &OpponentConfig{
		Mode:   opponent.None,
		Colour: chess.Black,
	}
}

// Enabled reports whether a computer opponent plays.
func (o *OpponentConfig) Enabled() bool {
	return o.Mode != opponent.None
}

// Validate checks that the opponent configuration is valid.
func (o *OpponentConfig) Validate() error {
	switch o.Mode {
	case opponent.None, opponent.Random, opponent.Greedy:
	default:
		return fmt.Errorf("opponent mode %v: %w", o.Mode, errors.ErrInvalidConfig)
	}
	if o.Colour != chess.White && o.Colour != chess.Black {
		return fmt.Errorf("opponent colour %d: %w", int(o.Colour), errors.ErrInvalidConfig)
	}
	return nil
}

// ParseColour converts "white" or "black" to a colour.
func ParseColour(s string) (chess.Colour, error) {
	switch s {
	case "white", "White", "w":
		return chess.White, nil
	case "black", "Black", "b":
		return chess.Black, nil
	}
	return chess.Black, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}
