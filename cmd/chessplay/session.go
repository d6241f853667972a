// session.go - Interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/opponent"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

var commands = []struct {
	name string
	help string
}{
	{"e2e4", "play a move in coordinate notation (e7e8n promotes)"},
	{"undo", "take back the last move (and the opponent's reply)"},
	{"new", "start a new game"},
	{"moves", "list legal moves; \"moves e2\" lists one piece's destinations"},
	{"board", "draw the board"},
	{"fen", "print the position in FEN"},
	{"history", "print the numbered move list"},
	{"help", "list commands"},
	{"quit", "leave"},
}

// session is one interactive game between a player and, optionally, a
// computer opponent.
type session struct {
	cfg      *config.Config
	game     *engine.Game
	picker   opponent.Picker
	renderer *render.Renderer
	out      io.Writer
	log      *log.Logger
}

// newSession starts a game from cfg. Output goes to cfg.OutputFile.
func newSession(cfg *config.Config, logger *log.Logger, colour bool) (*session, error) {
	game, err := cfg.NewGame()
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:      cfg,
		game:     game,
		picker:   opponent.NewSeeded(cfg.Opponent.Mode, cfg.Opponent.Seed),
		renderer: render.New(render.DefaultTheme, colour),
		out:      cfg.OutputFile,
		log:      logger,
	}
	s.log.Printf("session started: fen=%q opponent=%v colour=%v seed=%d",
		cfg.StartFEN, cfg.Opponent.Mode, cfg.Opponent.Colour, cfg.Opponent.Seed)
	return s, nil
}

// run reads commands from in until quit or end of input.
func (s *session) run(in io.Reader) error {
	s.start()

	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		if quit := s.handle(scanner.Text()); quit {
			s.log.Printf("session ended after %d plies", len(s.game.MoveHistory()))
			return nil
		}
		s.prompt()
	}
	s.log.Printf("input closed after %d plies", len(s.game.MoveHistory()))
	return scanner.Err()
}

// start shows the position and lets a white opponent open.
func (s *session) start() {
	s.reply()
	s.showBoard()
	s.showStatus()
}

func (s *session) prompt() {
	if s.game.IsGameOver() {
		fmt.Fprint(s.out, "game over> ")
		return
	}
	fmt.Fprintf(s.out, "%s> ", s.game.SideToMove())
}

// handle executes one input line and reports whether to quit.
func (s *session) handle(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.help()
	case "undo", "u":
		s.undo()
	case "new":
		s.newGame()
	case "moves":
		s.listMoves(fields[1:])
	case "board", "b":
		s.drawBoard()
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "history", "h":
		s.history()
	case "move", "m":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: move e2e4")
			return false
		}
		s.move(fields[1])
	default:
		s.move(fields[0])
	}
	return false
}

func (s *session) help() {
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-10s %s\n", c.name, c.help)
	}
}

// move plays the player's move and the opponent's reply.
func (s *session) move(text string) {
	mp, err := chess.ParseMovePair(text)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if s.isOpponentTurn() {
		fmt.Fprintln(s.out, "error: it is the opponent's move")
		return
	}
	if !s.play(mp) {
		return
	}
	s.reply()
	s.showBoard()
	s.showStatus()
}

// play applies a move, reporting a rejection to the player.
func (s *session) play(mp chess.MovePair) bool {
	side := s.game.SideToMove()
	if err := s.game.PlayPair(mp); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		s.log.Printf("rejected %s: %v", mp, err)
		return false
	}
	last, _ := s.game.LastMove()
	s.log.Printf("%s played %s", side, engine.Algebraic(last))
	if s.game.IsGameOver() {
		s.log.Printf("game over: %s", render.StatusLine(s.game))
	}
	return true
}

func (s *session) isOpponentTurn() bool {
	return s.picker != nil && !s.game.IsGameOver() && s.game.SideToMove() == s.cfg.Opponent.Colour
}

// reply lets the opponent move while it is its turn.
func (s *session) reply() {
	for s.isOpponentTurn() {
		mp, ok := s.picker.Pick(s.game)
		if !ok || !s.play(mp) {
			return
		}
		last, _ := s.game.LastMove()
		fmt.Fprintf(s.out, "%s plays %s\n", last.Piece.Colour, engine.Algebraic(last))
	}
}

// undo takes back the player's last move, and the opponent's reply to it.
func (s *session) undo() {
	if err := s.game.UndoLastMove(); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if s.isOpponentTurn() && len(s.game.MoveHistory()) > 0 {
		if err := s.game.UndoLastMove(); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
	}
	s.log.Printf("undo to ply %d", len(s.game.MoveHistory()))
	s.reply()
	s.showBoard()
	s.showStatus()
}

func (s *session) newGame() {
	game, err := s.cfg.NewGame()
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.game = game
	s.log.Printf("new game")
	s.start()
}

// listMoves prints all legal moves, or the destinations of one piece.
func (s *session) listMoves(args []string) {
	var moves []string
	if len(args) > 0 {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		for _, to := range s.game.LegalDestinations(sq) {
			moves = append(moves, to.String())
		}
	} else {
		for _, mp := range s.game.LegalMoves(s.game.SideToMove()) {
			moves = append(moves, mp.String())
		}
	}
	sort.Strings(moves)
	if len(moves) == 0 {
		fmt.Fprintln(s.out, "no legal moves")
		return
	}
	fmt.Fprintf(s.out, "%d: %s\n", len(moves), strings.Join(moves, " "))
}

func (s *session) history() {
	if h := s.game.FormatHistory(); h != "" {
		fmt.Fprintln(s.out, h)
		return
	}
	fmt.Fprintln(s.out, "no moves")
}

func (s *session) drawBoard() {
	if err := s.renderer.Draw(s.out, s.game); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *session) showBoard() {
	if s.cfg.Display.ShowBoard {
		s.drawBoard()
	}
}

func (s *session) showStatus() {
	fmt.Fprintln(s.out, render.StatusLine(s.game))
}
