package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/opponent"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOpponent sets the opponent mode.
func (b *ConfigBuilder) WithOpponent(mode opponent.Mode) *ConfigBuilder {
	b.cfg.Opponent.Mode = mode
	return b
}

// WithOpponentColour sets the side the opponent plays.
func (b *ConfigBuilder) WithOpponentColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Opponent.Colour = c
	return b
}

// WithSeed sets the opponent's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Opponent.Seed = seed
	return b
}

// WithColour sets the board colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Display.Colour = mode
	return b
}

// WithShowBoard controls whether the board is redrawn after each move.
func (b *ConfigBuilder) WithShowBoard(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = show
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithPerft requests a perft run to depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithPerftWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftHash enables the perft transposition table with at most
// entries entries (0 = unlimited).
func (b *ConfigBuilder) WithPerftHash(enabled bool, entries int) *ConfigBuilder {
	b.cfg.Perft.Hash = enabled
	b.cfg.Perft.HashEntries = entries
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}
