package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ColourMode controls ANSI colour in board output.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when writing to a terminal
	ColourAlways                   // Always colour
	ColourNever                    // Plain text
)

var colourModeNames = []string{"auto", "always", "never"}

func (m ColourMode) String() string {
	if m < 0 || int(m) >= len(colourModeNames) {
		return fmt.Sprintf("ColourMode(%d)", int(m))
	}
	return colourModeNames[m]
}

// ParseColourMode converts "auto", "always" or "never" to a ColourMode.
func ParseColourMode(s string) (ColourMode, error) {
	for i, name := range colourModeNames {
		if s == name {
			return ColourMode(i), nil
		}
	}
	return ColourAuto, fmt.Errorf("colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// Resolve reports whether to colour output given whether the output is a
// terminal.
func (m ColourMode) Resolve(isTerminal bool) bool {
	switch m {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return isTerminal
	}
}

// DisplayConfig holds settings for board output.
type DisplayConfig struct {
	Colour ColourMode

	// ShowBoard redraws the board after every move.
	ShowBoard bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:    ColourAuto,
		ShowBoard: true,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.Colour < ColourAuto || d.Colour > ColourNever {
		return fmt.Errorf("colour mode %v: %w", d.Colour, errors.ErrInvalidConfig)
	}
	return nil
}
