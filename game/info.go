package game

import "golang.org/x/exp/slices"

// Result is the outcome of the game at a ply.
type Result int8

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// MateScore is the evaluation of a checkmated position, from White's view.
const MateScore = 32000

// PositionInfo is everything known about one ply beyond the board itself.
// Snapshots are pushed by value before every move; the mask fields are values
// and the move list is never written after generation, so no two plies share
// mutable storage.
type PositionInfo struct {
	Castling      CastlingRights
	Kings         [2]Square
	InCheck       [2]bool
	Checkers      [2]CheckSource
	BlockMask     [2]SquareSet
	CaptureMask   [2]SquareSet
	EnPassant     Square
	HalfMoveClock int
	Eval          int
	Winner        Result

	checkSquares [7]SquareSet
	pins         SquareSet
	fingerprint  string
	key          uint64
	moves        []Move
}

// King returns the square of c's king.
func (pi *PositionInfo) King(c Color) Square { return pi.Kings[c.index()] }

// Fingerprint returns the canonical position string of this ply.
func (pi *PositionInfo) Fingerprint() string { return pi.fingerprint }

// Key returns the Zobrist key of this ply.
func (pi *PositionInfo) Key() uint64 { return pi.key }

// Moves returns the legal moves in generation order. The slice must not be
// modified.
func (pi *PositionInfo) Moves() []Move { return pi.moves }

// ValidMoves groups the legal moves by source square.
func (pi *PositionInfo) ValidMoves() map[Square][]Move {
	out := make(map[Square][]Move)
	for _, m := range pi.moves {
		out[m.From] = append(out[m.From], m)
	}
	return out
}

// LegalMoves returns the legal moves starting on sq; empty for an empty or
// enemy square.
func (pi *PositionInfo) LegalMoves(sq Square) []Move {
	var out []Move
	for _, m := range pi.moves {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

// clone returns a copy that shares nothing mutable with pi.
func (pi PositionInfo) clone() PositionInfo {
	pi.moves = slices.Clone(pi.moves)
	return pi
}
