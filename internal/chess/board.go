package chess

import "strings"

// Board is an 8x8 grid of occupants. It carries no rule knowledge:
// it stores pieces and offers unconditional move and undo primitives.
type Board struct {
	// Squares[row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the order of pieces on both home rows, a-file first.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition places the standard 32-piece starting array and
// clears rows 2..5.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(Black)][col] = B(backRank[col])
		b.Squares[PawnRow(Black)][col] = B(Pawn)
		b.Squares[PawnRow(White)][col] = W(Pawn)
		b.Squares[HomeRow(White)][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return InBounds(row, col)
}

// OccupantAt returns the piece at (row, col). Off-board coordinates
// read as empty.
func (b *Board) OccupantAt(row, col int) Piece {
	if !InBounds(row, col) {
		return Empty
	}
	return b.Squares[row][col]
}

// At returns the piece on a square.
func (b *Board) At(s Square) Piece {
	return b.OccupantAt(s.Row, s.Col)
}

// Set places a piece on a square, replacing any occupant. It is the
// sanctioned in-place overwrite used for promotion and position setup.
func (b *Board) Set(s Square, p Piece) {
	if s.InBounds() {
		b.Squares[s.Row][s.Col] = p
	}
}

// MovePiece relocates whatever occupies from to to, overwriting any
// occupant there, and empties from. No legality checking is done.
func (b *Board) MovePiece(fromRow, fromCol, toRow, toCol int) {
	b.Squares[toRow][toCol] = b.Squares[fromRow][fromCol]
	b.Squares[fromRow][fromCol] = Empty
}

// Move is MovePiece expressed with squares.
func (b *Board) Move(from, to Square) {
	b.MovePiece(from.Row, from.Col, to.Row, to.Col)
}

// UndoMove reverses a MovePiece recorded in m: the mover, as it was
// before the move, returns to From and the captured occupant (possibly
// none) returns to the square it was taken on. A rook relocated by
// castling is not restored here.
func (b *Board) UndoMove(m Move) {
	b.Squares[m.From.Row][m.From.Col] = m.Piece
	b.Squares[m.To.Row][m.To.Col] = Empty
	if m.IsCapture() {
		at := m.CaptureSquare()
		b.Squares[at.Row][at.Col] = m.Captured
	}
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(c Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(c, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many pieces of a colour and kind are on the board.
func (b *Board) Count(c Colour, k Kind) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(c, k) {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board as eight lines of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MovePair is a candidate move: source, destination and, for a pawn
// reaching its last rank, the promotion kind.
type MovePair struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the pair in coordinate notation, e.g. "e7e8q".
func (mp MovePair) String() string {
	s := mp.From.String() + mp.To.String()
	if mp.Promotion != NoKind {
		s += strings.ToLower(mp.Promotion.Letter())
	}
	return s
}
