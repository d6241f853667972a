package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// placed is a piece and the square it stands on.
type placed struct {
	square string
	piece  chess.Piece
}

func boardWith(pieces ...placed) *chess.Board {
	b := chess.NewBoard()
	for _, p := range pieces {
		b.Set(chess.MustParseSquare(p.square), p.piece)
	}
	return b
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, s := range squares {
		names = append(names, s.String())
	}
	sort.Strings(names)
	return names
}

func sorted(names ...string) []string {
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)
	return names
}

func TestPseudoLegalDestinations_InitialPosition(t *testing.T) {
	board := chess.NewBoard()
	board.SetupInitialPosition()

	tests := []struct {
		from string
		want []string
	}{
		{"b1", sorted("a3", "c3")},
		{"g8", sorted("f6", "h6")},
		{"e2", sorted("e3", "e4")},
		{"d7", sorted("d6", "d5")},
		{"a1", sorted()},
		{"c1", sorted()},
		{"d1", sorted()},
		{"e1", sorted()},
		{"e4", sorted()},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got := squareNames(PseudoLegalDestinations(board, chess.MustParseSquare(tt.from), chess.NoSquare))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPseudoLegalDestinations_Counts(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		want  int
	}{
		{"rook centre", chess.W(chess.Rook), "d4", 14},
		{"bishop centre", chess.B(chess.Bishop), "d4", 13},
		{"queen centre", chess.W(chess.Queen), "d4", 27},
		{"king centre", chess.B(chess.King), "e4", 8},
		{"king corner", chess.W(chess.King), "a1", 3},
		{"knight centre", chess.W(chess.Knight), "d4", 8},
		{"knight corner", chess.B(chess.Knight), "a1", 2},
		{"knight edge", chess.W(chess.Knight), "h5", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(placed{tt.from, tt.piece})
			got := PseudoLegalDestinations(board, chess.MustParseSquare(tt.from), chess.NoSquare)
			if len(got) != tt.want {
				t.Errorf("len(PseudoLegalDestinations(%s)) = %d; want %d (%v)", tt.from, len(got), tt.want, squareNames(got))
			}
		})
	}
}

func TestPseudoLegalDestinations_Blocking(t *testing.T) {
	tests := []struct {
		name   string
		pieces []placed
		from   string
		want   []string
	}{
		{
			name: "bishop stops at own piece and captures enemy",
			pieces: []placed{
				{"c1", chess.W(chess.Bishop)},
				{"e3", chess.W(chess.Pawn)},
				{"a3", chess.B(chess.Knight)},
			},
			from: "c1",
			want: sorted("b2", "a3", "d2"),
		},
		{
			name: "rook blocked on every side",
			pieces: []placed{
				{"d4", chess.B(chess.Rook)},
				{"d5", chess.B(chess.Pawn)},
				{"d2", chess.W(chess.Pawn)},
				{"c4", chess.B(chess.King)},
				{"f4", chess.W(chess.Queen)},
			},
			from: "d4",
			want: sorted("d3", "d2", "e4", "f4"),
		},
		{
			name: "knight jumps over pieces but not onto own",
			pieces: []placed{
				{"b1", chess.W(chess.Knight)},
				{"a2", chess.W(chess.Pawn)},
				{"b2", chess.W(chess.Pawn)},
				{"c2", chess.W(chess.Pawn)},
				{"d2", chess.W(chess.Pawn)},
				{"c3", chess.B(chess.Pawn)},
			},
			from: "b1",
			want: sorted("a3", "c3"),
		},
		{
			name: "king does not step onto own pieces",
			pieces: []placed{
				{"e1", chess.W(chess.King)},
				{"d1", chess.W(chess.Queen)},
				{"f2", chess.W(chess.Pawn)},
				{"e2", chess.B(chess.Pawn)},
			},
			from: "e1",
			want: sorted("f1", "d2", "e2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(tt.pieces...)
			got := squareNames(PseudoLegalDestinations(board, chess.MustParseSquare(tt.from), chess.NoSquare))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPseudoLegalDestinations_Pawn(t *testing.T) {
	tests := []struct {
		name      string
		pieces    []placed
		from      string
		enPassant string
		want      []string
	}{
		{
			name:   "push blocked",
			pieces: []placed{{"e2", chess.W(chess.Pawn)}, {"e3", chess.B(chess.Knight)}},
			from:   "e2",
			want:   sorted(),
		},
		{
			name:   "double push blocked",
			pieces: []placed{{"e2", chess.W(chess.Pawn)}, {"e4", chess.B(chess.Knight)}},
			from:   "e2",
			want:   sorted("e3"),
		},
		{
			name:   "no double push off the starting row",
			pieces: []placed{{"e3", chess.W(chess.Pawn)}},
			from:   "e3",
			want:   sorted("e4"),
		},
		{
			name: "diagonal captures only enemies",
			pieces: []placed{
				{"e4", chess.W(chess.Pawn)},
				{"d5", chess.B(chess.Pawn)},
				{"f5", chess.W(chess.Knight)},
			},
			from: "e4",
			want: sorted("e5", "d5"),
		},
		{
			name: "black moves down the board",
			pieces: []placed{
				{"c7", chess.B(chess.Pawn)},
				{"b6", chess.W(chess.Bishop)},
			},
			from: "c7",
			want: sorted("c6", "c5", "b6"),
		},
		{
			name: "en passant with target",
			pieces: []placed{
				{"e5", chess.W(chess.Pawn)},
				{"d5", chess.B(chess.Pawn)},
			},
			from:      "e5",
			enPassant: "d6",
			want:      sorted("e6", "d6"),
		},
		{
			name: "en passant needs the target",
			pieces: []placed{
				{"e5", chess.W(chess.Pawn)},
				{"d5", chess.B(chess.Pawn)},
			},
			from: "e5",
			want: sorted("e6"),
		},
		{
			name: "en passant needs an enemy pawn beside",
			pieces: []placed{
				{"e5", chess.W(chess.Pawn)},
				{"d5", chess.B(chess.Knight)},
			},
			from:      "e5",
			enPassant: "d6",
			want:      sorted("e6"),
		},
		{
			name: "black en passant",
			pieces: []placed{
				{"b4", chess.B(chess.Pawn)},
				{"c4", chess.W(chess.Pawn)},
			},
			from:      "b4",
			enPassant: "c3",
			want:      sorted("b3", "c3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(tt.pieces...)
			ep := chess.NoSquare
			if tt.enPassant != "" {
				ep = chess.MustParseSquare(tt.enPassant)
			}
			got := squareNames(PseudoLegalDestinations(board, chess.MustParseSquare(tt.from), ep))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPseudoLegalDestinations_EmptySquare(t *testing.T) {
	board := chess.NewBoard()
	if got := PseudoLegalDestinations(board, chess.MustParseSquare("e4"), chess.NoSquare); len(got) != 0 {
		t.Errorf("PseudoLegalDestinations(empty) = %v; want none", squareNames(got))
	}
}
