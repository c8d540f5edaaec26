package engine

import (
	"time"

	"chess-game/game"
)

// MaxScore is wider than any evaluation or mate score.
const MaxScore = game.MateScore + 500

// Result is the outcome of a root search. Score is from the side to move.
type Result struct {
	Move  game.Move
	Score int
	Depth int
	Stats Stats
	Time  time.Duration
}

// FindBestMove returns the best move at the given depth, or the zero Move
// when the position has no legal moves.
func (e *Engine) FindBestMove(gs *game.GameState, depth int) game.Move {
	return e.Search(gs, depth).Move
}

// Search runs a full-window root search. The root is never answered from the
// memo, and on equal scores the earlier move in ordering wins.
func (e *Engine) Search(gs *game.GameState, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	e.stats = Stats{}
	start := time.Now()
	res := Result{Depth: depth, Score: -MaxScore}

	moves := gs.Moves()
	if len(moves) == 0 {
		res.Score = e.quiescence(gs, 0, 0, -MaxScore, MaxScore, int(gs.Player()))
		res.Stats, res.Time = e.stats, time.Since(start)
		return res
	}
	res.Move = moves[0]

	color := int(gs.Player())
	alpha, beta := -MaxScore, MaxScore
	list := scoreMovesList(moves, &e.opts.Weights, false)
	for i := range list.moves {
		m := list.orderNextMove(i)
		e.stats.Nodes++
		score := -withMove(gs, m, func() int {
			return e.negamax(gs, depth-1, 1, -beta, -alpha, -color)
		})
		if score > res.Score {
			res.Score, res.Move = score, m
		}
		if score > alpha {
			alpha = score
		}
	}
	res.Stats, res.Time = e.stats, time.Since(start)
	e.report(res)
	return res
}

// Negamax scores the position for colorSign, the side to move (+1 White,
// -1 Black), searching depth plies inside the (alpha, beta) window.
func (e *Engine) Negamax(gs *game.GameState, depth, alpha, beta, colorSign int) int {
	return e.negamax(gs, depth, 0, alpha, beta, colorSign)
}

func (e *Engine) negamax(gs *game.GameState, depth, ply, alpha, beta, color int) int {
	if depth <= 0 || gs.Winner() != game.Ongoing {
		return e.quiescence(gs, ply, e.opts.QuiescencePlies, alpha, beta, color)
	}
	e.stats.Nodes++

	key, fp := gs.Key(), gs.Fingerprint()
	if score, ok := e.memo.probe(key, fp, depth, ply); ok {
		e.stats.MemoHits++
		return score
	}

	alphaOrig := alpha
	best := -MaxScore
	list := scoreMovesList(gs.Moves(), &e.opts.Weights, false)
	for i := range list.moves {
		m := list.orderNextMove(i)
		score := -withMove(gs, m, func() int {
			return e.negamax(gs, depth-1, ply+1, -beta, -alpha, -color)
		})
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			e.stats.BetaCutoffs++
			return best
		}
	}

	// Only values strictly inside the window are exact.
	if best > alphaOrig {
		e.memo.store(key, fp, depth, ply, best)
		e.stats.MemoStores++
	}
	return best
}

// quiescence extends the search through captures and promotions until the
// position is quiet or budget runs out. In check every move is searched and
// standing pat is not allowed.
func (e *Engine) quiescence(gs *game.GameState, ply, budget, alpha, beta, color int) int {
	e.stats.QNodes++
	switch gs.Winner() {
	case game.Draw:
		return 0
	case game.WhiteWins, game.BlackWins:
		return -(game.MateScore - ply)
	}

	standPat := color * gs.Eval()
	if budget <= 0 {
		return standPat
	}

	inCheck := gs.InCheck()
	best := -MaxScore
	if !inCheck {
		if standPat >= beta {
			e.stats.StandPatCutoffs++
			return standPat
		}
		best = standPat
		if standPat > alpha {
			alpha = standPat
		}
	}

	list := scoreMovesList(gs.Moves(), &e.opts.Weights, !inCheck)
	for i := range list.moves {
		m := list.orderNextMove(i)
		score := -withMove(gs, m, func() int {
			return e.quiescence(gs, ply+1, budget-1, -beta, -alpha, -color)
		})
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			e.stats.QBetaCutoffs++
			break
		}
	}
	return best
}

func (e *Engine) report(res Result) {
	if e.opts.Logger == nil {
		return
	}
	e.opts.Logger.Printf("info depth %d score cp %d time %d %s pv %s",
		res.Depth, res.Score, res.Time.Milliseconds(), res.Stats, res.Move.UCI())
}
