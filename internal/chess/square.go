package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square addresses a cell of the board. Row 0 is rank 8 and
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare stands for "no square", e.g. when there is no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether row and col both lie within 0..7.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return InBounds(s.Row, s.Col)
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit '1'..'8'.
func (s Square) Rank() byte {
	return byte('0' + BoardSize - s.Row)
}

// String returns the square in coordinate notation, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts coordinate notation such as "e4" into a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col := int(s[0]) - FileBase
	rank := int(s[1]) - '0'
	row := BoardSize - rank
	if !InBounds(row, col) {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{Row: row, Col: col}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
