package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 means no perft run.
	Depth int

	// Workers is the number of goroutines counting root moves.
	Workers int

	// Divide prints the count below each root move.
	Divide bool

	// Hash enables a shared transposition table.
	Hash bool

	// HashEntries caps the table size (0 = unlimited).
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("perft hash entries %d < 0: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
