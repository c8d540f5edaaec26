package game

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// PerftStats counts leaf nodes of a perft walk by the kind of move that
// reached them.
type PerftStats struct {
	Nodes            uint64
	Captures         uint64
	EnPassant        uint64
	Castles          uint64
	Promotions       uint64
	Checks           uint64
	DiscoveredChecks uint64
	DoubleChecks     uint64
	Checkmates       uint64
}

func (s *PerftStats) add(o PerftStats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.DiscoveredChecks += o.DiscoveredChecks
	s.DoubleChecks += o.DoubleChecks
	s.Checkmates += o.Checkmates
}

// Perft counts the leaf nodes of the legal move tree to depth.
func Perft(gs *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := gs.Moves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		gs.MakeMove(m)
		nodes += Perft(gs, depth-1)
		gs.UndoMove(false)
	}
	return nodes
}

// PerftDetailed walks the tree like Perft and classifies every leaf.
func PerftDetailed(gs *GameState, depth int) PerftStats {
	var stats PerftStats
	if depth <= 0 {
		stats.Nodes = 1
		return stats
	}
	for _, m := range gs.Moves() {
		gs.MakeMove(m)
		if depth == 1 {
			stats.add(gs.leafStats(m))
		} else {
			stats.add(PerftDetailed(gs, depth-1))
		}
		gs.UndoMove(false)
	}
	return stats
}

// leafStats classifies the position just reached by m.
func (gs *GameState) leafStats(m Move) PerftStats {
	s := PerftStats{Nodes: 1}
	if m.IsCapture() {
		s.Captures++
	}
	if m.EnPassant {
		s.EnPassant++
	}
	if m.Castling {
		s.Castles++
	}
	if m.Promotion != Empty {
		s.Promotions++
	}
	if gs.InCheck() {
		s.Checks++
		if m.Discovered.Any() {
			s.DiscoveredChecks++
		}
		if gs.info.Checkers[gs.player.index()].Kind == DoubleCheck {
			s.DoubleChecks++
		}
	}
	if gs.info.Winner == WhiteWins || gs.info.Winner == BlackWins {
		s.Checkmates++
	}
	return s
}

// PerftDivide returns the perft count below each root move, keyed by its
// coordinate text.
func PerftDivide(gs *GameState, depth int) map[string]uint64 {
	out := make(map[string]uint64, len(gs.Moves()))
	for _, m := range gs.Moves() {
		gs.MakeMove(m)
		out[m.UCI()] = Perft(gs, depth-1)
		gs.UndoMove(false)
	}
	return out
}

// PerftDivideParallel is PerftDivide with one goroutine per root move, each
// walking its own clone of gs. It stops early when ctx is cancelled.
func PerftDivideParallel(ctx context.Context, gs *GameState, depth int) (map[string]uint64, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	out := make(map[string]uint64, len(gs.Moves()))
	for _, m := range gs.Moves() {
		m := m
		child := gs.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.MakeMove(m)
			n := Perft(child, depth-1)
			mu.Lock()
			out[m.UCI()] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
