// Package engine provides chess move validation and the game state
// machine: legal move generation, castling, en passant, promotion,
// check, checkmate and stalemate detection, and undo.
//
// A Game is not safe for concurrent use. Terminal evaluation performs
// temporary board mutations, so a Game shared between goroutines must be
// guarded by a single lock or owned by one goroutine.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status is the state of a game.
type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// IsTerminal reports whether no further moves may be applied.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Game orchestrates a chess game: turn order, move legality, special
// moves, terminal detection and move history.
type Game struct {
	board     *chess.Board
	toMove    chess.Colour
	status    Status
	enPassant chess.Square
	rights    chess.CastlingRights
	history   []chess.Move

	// Plies played before this game's first recorded move (FEN setups).
	plyOffset int
}

// NewGame creates a game in the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.StartNewGame()
	return g
}

// StartNewGame resets the board to the standard position and clears
// history, castling rights, the en passant target and the terminal flag.
func (g *Game) StartNewGame() {
	g.board = chess.NewBoard()
	g.board.SetupInitialPosition()
	g.toMove = chess.White
	g.status = InProgress
	g.enPassant = chess.NoSquare
	g.rights = chess.CastlingRights{}
	g.history = nil
	g.plyOffset = 0
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.toMove
}

// Status returns the game status.
func (g *Game) Status() Status {
	return g.status
}

// IsGameOver reports whether the game reached checkmate or stalemate.
func (g *Game) IsGameOver() bool {
	return g.status.IsTerminal()
}

// Checkmated returns the colour that has been checkmated, if any.
func (g *Game) Checkmated() (chess.Colour, bool) {
	return g.toMove, g.status == Checkmate
}

// MoveHistory returns the applied moves in order.
func (g *Game) MoveHistory() []chess.Move {
	history := make([]chess.Move, len(g.history))
	copy(history, g.history)
	return history
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// EnPassantTarget returns the square a pawn just passed over, if any.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.enPassant, g.enPassant != chess.NoSquare
}

// CastlingRights returns the current castling-rights flags.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.rights
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Copy()
	c.history = g.MoveHistory()
	return &c
}

// IsInCheck reports whether colour's king is attacked. A missing king is
// an invariant violation.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return IsSquareAttacked(g.board, g.kingSquare(colour), colour.Opposite())
}

// kingSquare locates colour's king and panics if it is missing.
func (g *Game) kingSquare(colour chess.Colour) chess.Square {
	king, ok := g.board.FindKing(colour)
	if !ok {
		panic("engine: no " + colour.String() + " king on the board")
	}
	return king
}

// TryMove attempts a move and reports whether it was applied. A rejected
// move leaves the game exactly as it was. promotion selects the piece a
// pawn becomes on its last rank; chess.NoKind means a queen. It is
// ignored for every other move.
func (g *Game) TryMove(fromRow, fromCol, toRow, toCol int, promotion chess.Kind) bool {
	return g.Play(chess.Sq(fromRow, fromCol), chess.Sq(toRow, toCol), promotion) == nil
}

// PlayPair applies a candidate move.
func (g *Game) PlayPair(mp chess.MovePair) error {
	return g.Play(mp.From, mp.To, mp.Promotion)
}

// Play applies a move, returning a *errors.MoveError wrapping the reason
// when it is rejected. A rejected move leaves the game unchanged.
func (g *Game) Play(from, to chess.Square, promotion chess.Kind) error {
	if err := g.play(from, to, promotion); err != nil {
		return &errors.MoveError{
			Err:  err,
			Move: from.String() + to.String(),
			Side: g.toMove.String(),
			Ply:  g.plyOffset + len(g.history) + 1,
		}
	}
	return nil
}

func (g *Game) play(from, to chess.Square, promotion chess.Kind) error {
	if !from.InBounds() || !to.InBounds() {
		return errors.ErrOutOfBounds
	}
	if g.status.IsTerminal() {
		return errors.ErrGameOver
	}

	piece := g.board.At(from)
	if piece.IsEmpty() {
		return errors.ErrNoPiece
	}
	if piece.Colour != g.toMove {
		return errors.ErrWrongTurn
	}
	if g.board.At(to).Kind == chess.King {
		return errors.ErrKingCapture
	}

	// The promotion kind is ignored unless a pawn reaches its last row.
	if isPromotionMove(piece, to) {
		if promotion == chess.NoKind {
			promotion = chess.Queen
		}
		if !promotion.IsPromotionKind() {
			return errors.ErrInvalidPromotion
		}
	}

	if side := castleSide(piece, from, to); side != chess.NoCastle {
		return g.castle(piece.Colour, side)
	}
	return g.applyMove(piece, from, to, promotion)
}

// finishMove records a completed move, passes the turn and evaluates
// checkmate and stalemate for the new side to move.
func (g *Game) finishMove(record chess.Move) {
	g.history = append(g.history, record)
	g.toMove = g.toMove.Opposite()
	g.status = g.evaluateTerminal(g.toMove)
}

// UndoLastMove takes back the most recent move, restoring the board,
// the side to move, the castling rights and the en passant target.
func (g *Game) UndoLastMove() error {
	if len(g.history) == 0 {
		return errors.ErrNoHistory
	}
	last := g.history[len(g.history)-1]

	g.board.UndoMove(last)
	if last.IsCastle() {
		row := last.From.Row
		g.board.Move(chess.Sq(row, last.Castle.RookDestCol()), chess.Sq(row, last.Castle.RookFromCol()))
	}

	g.rights = last.Rights
	g.enPassant = last.PrevEnPassant
	g.history = g.history[:len(g.history)-1]
	g.toMove = g.toMove.Opposite()
	// Only a game in progress accepts moves.
	g.status = InProgress
	return nil
}
