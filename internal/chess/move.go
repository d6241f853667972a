package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CastleSide distinguishes castling moves from ordinary ones.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the conventional name of a castling side.
func (cs CastleSide) String() string {
	switch cs {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Castling columns on the home row.
const (
	KingCol          = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)

// KingDestCol returns the column the king lands on when castling.
func (cs CastleSide) KingDestCol() int {
	if cs == Queenside {
		return 2
	}
	return 6
}

// RookFromCol returns the column the rook starts on.
func (cs CastleSide) RookFromCol() int {
	if cs == Queenside {
		return QueensideRookCol
	}
	return KingsideRookCol
}

// RookDestCol returns the column the rook lands on.
func (cs CastleSide) RookDestCol() int {
	if cs == Queenside {
		return 3
	}
	return 5
}

// CastlingRights records which kings and rooks have moved.
// The flags only ever become true during play; undo restores them
// from a snapshot.
type CastlingRights struct {
	WhiteKingMoved          bool
	BlackKingMoved          bool
	WhiteKingsideRookMoved  bool
	WhiteQueensideRookMoved bool
	BlackKingsideRookMoved  bool
	BlackQueensideRookMoved bool
}

// KingMoved reports whether the king of colour c has moved.
func (cr CastlingRights) KingMoved(c Colour) bool {
	if c == White {
		return cr.WhiteKingMoved
	}
	return cr.BlackKingMoved
}

// RookMoved reports whether the rook of colour c on the given side has moved.
func (cr CastlingRights) RookMoved(c Colour, side CastleSide) bool {
	switch {
	case c == White && side == Kingside:
		return cr.WhiteKingsideRookMoved
	case c == White && side == Queenside:
		return cr.WhiteQueensideRookMoved
	case c == Black && side == Kingside:
		return cr.BlackKingsideRookMoved
	case c == Black && side == Queenside:
		return cr.BlackQueensideRookMoved
	}
	return true
}

// CanCastle reports whether neither the king nor the rook for side has moved.
func (cr CastlingRights) CanCastle(c Colour, side CastleSide) bool {
	return !cr.KingMoved(c) && !cr.RookMoved(c, side)
}

// SetKingMoved marks the king of colour c as moved.
func (cr *CastlingRights) SetKingMoved(c Colour) {
	if c == White {
		cr.WhiteKingMoved = true
	} else {
		cr.BlackKingMoved = true
	}
}

// SetRookMoved marks the rook of colour c on the given side as moved.
func (cr *CastlingRights) SetRookMoved(c Colour, side CastleSide) {
	switch {
	case c == White && side == Kingside:
		cr.WhiteKingsideRookMoved = true
	case c == White && side == Queenside:
		cr.WhiteQueensideRookMoved = true
	case c == Black && side == Kingside:
		cr.BlackKingsideRookMoved = true
	case c == Black && side == Queenside:
		cr.BlackQueensideRookMoved = true
	}
}

// Move is the record of an applied move. It holds enough to reverse the
// move exactly: the mover as it was, what was captured and where, and
// the castling rights and en passant target from before the move.
type Move struct {
	From Square
	To   Square

	// The piece that moved, before any promotion.
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// Where the captured piece stood. Equal to To except for en passant.
	CapturedAt Square

	// The kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Castling side for a castling move; the rook relocation is implied.
	Castle CastleSide

	// Whether this was an en passant capture.
	EnPassant bool

	// Castling rights immediately before this move.
	Rights CastlingRights

	// En passant target immediately before this move (NoSquare if none).
	PrevEnPassant Square
}

// IsCapture returns true if this move captured a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// CaptureSquare returns where the captured piece stood.
func (m Move) CaptureSquare() Square {
	if m.EnPassant {
		return m.CapturedAt
	}
	return m.To
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// Pair returns the candidate form of the move.
func (m Move) Pair() MovePair {
	return MovePair{From: m.From, To: m.To, Promotion: m.Promotion}
}

// ParseMovePair parses coordinate notation such as "e2e4" or "e7e8q".
func ParseMovePair(s string) (MovePair, error) {
	if len(s) != 4 && len(s) != 5 {
		return MovePair{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MovePair{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MovePair{}, err
	}
	mp := MovePair{From: from, To: to}
	if len(s) == 5 {
		mp.Promotion = KindFromLetter(s[4])
		if !mp.Promotion.IsPromotionKind() {
			return MovePair{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPromotion)
		}
	}
	return mp, nil
}
