package game

import "math/rand"

// Zobrist keys: piece code (offset by 6) per square, castling state,
// en passant file and side to move.
var (
	zobristPiece     [13][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are reproducible across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func pieceKey(p Piece, sq Square) uint64 { return zobristPiece[int(p)+6][sq] }

// stateKey covers everything in the key except piece placement.
func stateKey(side Color, castling CastlingRights, ep Square) uint64 {
	var key uint64
	if side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[castling]
	if ep != NoSquare {
		key ^= zobristEnPassant[ep.Col()]
	}
	return key
}
