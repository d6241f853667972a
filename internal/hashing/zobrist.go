// Package hashing provides Zobrist position keys and a transposition
// table for perft counts.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const zobristSeed = 0x98F107A2BEEF1234

var (
	zobristPiece  [2][7][chess.BoardSize * chess.BoardSize]uint64 // [Colour][Kind][Square]
	zobristCastle [2][3]uint64                                   // [Colour][CastleSide]
	zobristEP     [chess.BoardSize]uint64                        // One per file
	zobristBlack  uint64                                         // XOR when black to move
)

func init() {
	initZobrist()
}

// xorshift64*
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: zobristSeed}

	for c := range zobristPiece {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for c := range zobristCastle {
		zobristCastle[c][chess.Kingside] = rng.next()
		zobristCastle[c][chess.Queenside] = rng.next()
	}
	for file := range zobristEP {
		zobristEP[file] = rng.next()
	}
	zobristBlack = rng.next()
}

// Key returns the Zobrist key of the game's position: placement, side to
// move, castling availability and en passant target. Two positions with
// equal keys have the same legal moves.
func Key(g *engine.Game) uint64 {
	return BoardKey(g.Board()) ^ stateKey(g)
}

// BoardKey hashes piece placement only.
func BoardKey(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.OccupantAt(row, col)
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristPiece[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	return hash
}

func stateKey(g *engine.Game) uint64 {
	var hash uint64
	if g.SideToMove() == chess.Black {
		hash ^= zobristBlack
	}

	rights := g.CastlingRights()
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if rights.CanCastle(c, side) {
				hash ^= zobristCastle[c][side]
			}
		}
	}

	if ep, ok := g.EnPassantTarget(); ok {
		hash ^= zobristEP[ep.Col]
	}
	return hash
}
