package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const castlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

func TestCastling_Success(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		king, rook string
		emptied    []string
		wantSide   chess.CastleSide
		wantRights chess.CastlingRights
	}{
		{
			name:       "white kingside",
			fen:        castlingFEN,
			move:       "e1g1",
			king:       "g1",
			rook:       "f1",
			emptied:    []string{"e1", "h1"},
			wantSide:   chess.Kingside,
			wantRights: chess.CastlingRights{WhiteKingMoved: true, WhiteKingsideRookMoved: true},
		},
		{
			name:       "white queenside",
			fen:        castlingFEN,
			move:       "e1c1",
			king:       "c1",
			rook:       "d1",
			emptied:    []string{"e1", "a1", "b1"},
			wantSide:   chess.Queenside,
			wantRights: chess.CastlingRights{WhiteKingMoved: true, WhiteQueensideRookMoved: true},
		},
		{
			name:       "black kingside",
			fen:        "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:       "e8g8",
			king:       "g8",
			rook:       "f8",
			emptied:    []string{"e8", "h8"},
			wantSide:   chess.Kingside,
			wantRights: chess.CastlingRights{BlackKingMoved: true, BlackKingsideRookMoved: true},
		},
		{
			name:       "black queenside",
			fen:        "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:       "e8c8",
			king:       "c8",
			rook:       "d8",
			emptied:    []string{"e8", "a8"},
			wantSide:   chess.Queenside,
			wantRights: chess.CastlingRights{BlackKingMoved: true, BlackQueensideRookMoved: true},
		},
		{
			name:       "queenside with b1 attacked",
			fen:        "r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1",
			move:       "e1c1",
			king:       "c1",
			rook:       "d1",
			emptied:    []string{"e1", "a1"},
			wantSide:   chess.Queenside,
			wantRights: chess.CastlingRights{WhiteKingMoved: true, WhiteQueensideRookMoved: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			colour := g.SideToMove()
			before := snap(g)

			testutil.MustPlay(t, g, tt.move)

			board := g.Board()
			testutil.AssertEqual(t, board.At(chess.MustParseSquare(tt.king)), chess.Piece{Kind: chess.King, Colour: colour})
			testutil.AssertEqual(t, board.At(chess.MustParseSquare(tt.rook)), chess.Piece{Kind: chess.Rook, Colour: colour})
			for _, sq := range tt.emptied {
				testutil.AssertEqual(t, board.At(chess.MustParseSquare(sq)), chess.Empty, "square %s", sq)
			}
			testutil.AssertEqual(t, g.CastlingRights(), tt.wantRights)

			last, ok := g.LastMove()
			testutil.AssertTrue(t, ok, "LastMove")
			testutil.AssertEqual(t, last.Castle, tt.wantSide)
			testutil.AssertEqual(t, last.Pair().String(), tt.move)
			testutil.AssertEqual(t, last.Rights, chess.CastlingRights{})

			testutil.AssertNoError(t, g.UndoLastMove())
			testutil.AssertEqual(t, snap(g), before, "state after undoing %s", tt.move)
		})
	}
}

func TestCastling_Denied(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		move  string
	}{
		{
			name:  "king has moved and returned",
			fen:   castlingFEN,
			moves: []string{"e1f1", "e8f8", "f1e1", "f8e8"},
			move:  "e1g1",
		},
		{
			name:  "rook has moved and returned",
			fen:   castlingFEN,
			moves: []string{"h1h2", "a8b8", "h2h1", "b8a8"},
			move:  "e1g1",
		},
		{
			name: "right not granted",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			move: "e1g1",
		},
		{
			name: "piece between king and rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			move: "e1g1",
		},
		{
			name: "knight on b1 blocks queenside",
			fen:  "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			move: "e1c1",
		},
		{
			name: "king in check",
			fen:  "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
			move: "e1g1",
		},
		{
			name: "passing through check",
			fen:  "r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1",
			move: "e1g1",
		},
		{
			name: "landing in check",
			fen:  "r3k2r/8/8/8/6r1/8/8/R3K2R w KQkq - 0 1",
			move: "e1g1",
		},
		{
			name: "pawn covers the crossing square",
			fen:  "r3k2r/8/8/8/8/8/4p3/R3K2R w KQkq - 0 1",
			move: "e1c1",
		},
		{
			name:  "another rook on a captured rook's corner",
			fen:   "r3k2r/8/8/4b3/8/3R4/8/R3K2R b KQkq - 0 1",
			moves: []string{"e5a1", "d3a3", "a1e5", "a3a1", "a8a7"},
			move:  "e1c1",
		},
		{
			name: "rook missing",
			fen:  "r3k3/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8g8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			testutil.MustPlay(t, g, tt.moves...)
			before := snap(g)

			mp := testutil.MustMove(t, tt.move)
			testutil.AssertErrorIs(t, g.PlayPair(mp), chesserrors.ErrCastlingDenied)
			testutil.AssertEqual(t, snap(g), before, "state after denied castling")
			if containsSquare(g.LegalDestinations(mp.From), mp.To) {
				t.Errorf("LegalDestinations(%s) includes %s", mp.From, mp.To)
			}
		})
	}
}

func TestCastling_AllowedOtherSide(t *testing.T) {
	g := mustFEN(t, "r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertErrorIs(t, g.Play(chess.MustParseSquare("e1"), chess.MustParseSquare("g1"), chess.NoKind), chesserrors.ErrCastlingDenied)
	testutil.MustPlay(t, g, "e1c1")
}

func TestRookCaptureRemovesCastlingRight(t *testing.T) {
	g := mustFEN(t, castlingFEN)
	testutil.MustPlay(t, g, "a1a8")

	want := chess.CastlingRights{WhiteQueensideRookMoved: true, BlackQueensideRookMoved: true}
	testutil.AssertEqual(t, g.CastlingRights(), want)
	testutil.AssertEqual(t, g.FEN(), "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1")
}
