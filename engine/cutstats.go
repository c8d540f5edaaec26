package engine

import "fmt"

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes           uint64
	QNodes          uint64
	MemoHits        uint64
	MemoStores      uint64
	BetaCutoffs     uint64
	StandPatCutoffs uint64
	QBetaCutoffs    uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes %d qnodes %d memohits %d memostores %d cutoffs %d standpat %d qcutoffs %d",
		s.Nodes, s.QNodes, s.MemoHits, s.MemoStores, s.BetaCutoffs, s.StandPatCutoffs, s.QBetaCutoffs)
}
