// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/opponent"
)

var (
	// Opponent
	opponentMode   = flag.String("opponent", "none", "Computer opponent: none, random, greedy")
	opponentColour = flag.String("opponent-colour", "black", "Side the opponent plays: white, black")
	seed           = flag.Int64("seed", 0, "Random seed for the opponent (0 = time based)")

	// Display
	colourMode = flag.String("colour", "auto", "Board colour: auto, always, never")
	noBoard    = flag.Bool("noboard", false, "Don't redraw the board after each move")

	// Position
	startFEN = flag.String("fen", engine.InitialFEN, "Starting position in FEN")

	// Logging
	logFile   = flag.String("l", "", "Write the session log to this file")
	appendLog = flag.String("a", "", "Append the session log to this file")

	// Perft
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth from -fen and exit")
	perftDivide = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers     = flag.Int("workers", 1, "Number of perft worker goroutines")
	perftHash   = flag.Bool("hash", false, "With -perft, share a transposition table between workers")
	hashEntries = flag.Int("hash-entries", 0, "Maximum transposition table entries (0 = unlimited)")
)

// buildConfig creates the configuration from command-line flags.
func buildConfig() (*config.Config, error) {
	mode, err := opponent.ParseMode(*opponentMode)
	if err != nil {
		return nil, err
	}
	side, err := config.ParseColour(*opponentColour)
	if err != nil {
		return nil, err
	}
	colour, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfigBuilder().
		WithOpponent(mode).
		WithOpponentColour(side).
		WithSeed(*seed).
		WithColour(colour).
		WithShowBoard(!*noBoard).
		WithStartFEN(*startFEN).
		WithPerft(*perftDepth, *perftDivide).
		WithPerftWorkers(*workers).
		WithPerftHash(*perftHash, *hashEntries).
		Build()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
