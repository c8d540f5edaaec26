package engine

import "chess-game/game"

type move struct {
	move  game.Move
	score int
}

type moveList struct {
	moves []move
}

/*
	Move ordering offsets:
	- Checks first, direct or discovered, since they force the reply.
	- Captures next, most valuable victim first, cheaper attacker breaking ties.
	- Promotions by the value of the new piece.
	- Everything else by how much the piece-square table likes the move.
	- Castling gets a small nudge on top.
*/
const (
	checkOffset     = 40000
	captureOffset   = 20000
	promotionOffset = 10000
	castleBonus     = 5
)

func scoreMove(m game.Move, w *game.Weights) int {
	score := 0
	if m.GivesCheck() {
		score += checkOffset
	}
	if m.IsCapture() {
		score += captureOffset + 10*w.Value(m.Captured) - w.Value(m.Piece)
	}
	if m.Promotion != game.Empty {
		score += promotionOffset + w.Value(m.Promotion)
	}
	score += w.SquareValue(m.Piece, m.To) - w.SquareValue(m.Piece, m.From)
	if m.Castling {
		score += castleBonus
	}
	return score
}

func isNoisy(m game.Move) bool { return m.IsCapture() || m.Promotion != game.Empty }

// scoreMovesList scores moves into a fresh list, keeping only captures and
// promotions when noisyOnly is set. The input slice is left untouched.
func scoreMovesList(moves []game.Move, w *game.Weights, noisyOnly bool) moveList {
	list := moveList{moves: make([]move, 0, len(moves))}
	for _, m := range moves {
		if noisyOnly && !isNoisy(m) {
			continue
		}
		list.moves = append(list.moves, move{move: m, score: scoreMove(m, w)})
	}
	return list
}

// orderNextMove brings the best remaining move to index i. Earlier moves win
// ties and the rest keep their relative order, so the ordering is stable.
func (l *moveList) orderNextMove(i int) game.Move {
	best := i
	for j := i + 1; j < len(l.moves); j++ {
		if l.moves[j].score > l.moves[best].score {
			best = j
		}
	}
	picked := l.moves[best]
	copy(l.moves[i+1:best+1], l.moves[i:best])
	l.moves[i] = picked
	return picked.move
}

// OrderMoves returns moves sorted best first by the ordering heuristic.
func OrderMoves(moves []game.Move, w *game.Weights) []game.Move {
	list := scoreMovesList(moves, w, false)
	out := make([]game.Move, len(list.moves))
	for i := range out {
		out[i] = list.orderNextMove(i)
	}
	return out
}
