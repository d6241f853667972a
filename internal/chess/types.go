// Package chess provides the core chess types: colours, piece kinds,
// occupants, squares, the board and the move record.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a piece. NoKind marks an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds are the kinds a pawn may become on its last rank.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// Name returns the English name of a kind.
func (k Kind) Name() string {
	names := []string{"", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return ""
}

// String returns the name of a kind.
func (k Kind) String() string {
	if k == NoKind {
		return "None"
	}
	return k.Name()
}

// Letter returns the display letter of a kind (uppercase), empty for pawns.
func (k Kind) Letter() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Value returns the conventional material value of a kind.
// The king is priceless and reports 0.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// IsPromotionKind reports whether a pawn may promote to k.
func (k Kind) IsPromotionKind() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the occupant of an empty square.
var Empty = Piece{}

// W creates a white piece.
func W(k Kind) Piece {
	return Piece{Kind: k, Colour: White}
}

// B creates a black piece.
func B(k Kind) Piece {
	return Piece{Kind: k, Colour: Black}
}

// IsEmpty reports whether there is no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(c Colour, k Kind) bool {
	return p.Kind == k && p.Kind != NoKind && p.Colour == c
}

// IsEnemyOf reports whether p is a piece of the colour opposite to c.
func (p Piece) IsEnemyOf(c Colour) bool {
	return p.Kind != NoKind && p.Colour != c
}

// FENLetter returns the FEN letter of a piece: uppercase for white,
// lowercase for black.
func (p Piece) FENLetter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p.Kind < 0 || int(p.Kind) >= len(letters) {
		return '?'
	}
	c := letters[p.Kind]
	if p.Colour == Black && p.Kind != NoKind {
		c |= 0x20
	}
	return c
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s", p.Colour, p.Kind.Name())
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
)

// HomeRow returns the row holding a colour's back rank.
// Row 0 is rank 8, so white starts at the bottom row.
func HomeRow(c Colour) int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row a colour's pawns start on.
func PawnRow(c Colour) int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// LastRow returns the row on which a colour's pawns promote.
func LastRow(c Colour) int {
	return HomeRow(c.Opposite())
}

// Forward returns the row offset of a pawn advance: -1 for White, +1 for Black.
func Forward(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}
