// Package config provides configuration for the chessplay front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Opponent OpponentConfig
	Display  DisplayConfig
	Perft    PerftConfig

	// StartFEN is the position new games start from.
	StartFEN string

	// Output streams. The session log goes to stderr unless -l or -a
	// names a file.
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Opponent:   *NewOpponentConfig(),
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
		StartFEN:   engine.InitialFEN,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and the start position.
func (c *Config) Validate() error {
	if err := c.Opponent.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("%w: start position: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// NewGame starts a game from the configured position.
func (c *Config) NewGame() (*engine.Game, error) {
	return engine.NewGameFromFEN(c.StartFEN)
}
