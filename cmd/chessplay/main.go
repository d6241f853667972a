// chessplay is a terminal chess game and perft tool built on the rules
// engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()

	if cfg.Perft.Enabled() {
		if err := runPerft(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Opponent.Seed == 0 {
		cfg.Opponent.Seed = time.Now().UnixNano()
	}

	colour := cfg.Display.Colour.Resolve(term.IsTerminal(int(os.Stdout.Fd())))
	logger := newSessionLogger(cfg.LogFile, petname.Generate(2, "-"))

	s, err := newSession(cfg, logger, colour)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(1)
	}
	if err := s.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(1)
	}
}

// newSessionLogger returns a logger whose lines carry the session id.
func newSessionLogger(w io.Writer, id string) *log.Logger {
	return log.New(w, fmt.Sprintf("chessplay[%s] ", id), log.LstdFlags)
}

// setupLogFile configures the log file based on command-line flags and
// returns a function that closes it.
func setupLogFile(cfg *config.Config) func() {
	var file *os.File
	var err error

	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
	default:
		return func() {}
	}

	cfg.LogFile = file
	return func() { file.Close() }
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal, or count positions with -perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during play:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.help)
	}
}
