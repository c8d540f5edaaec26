package engine

import "chess-game/game"

// Scores beyond mateBound are mate scores and are stored relative to the
// node rather than the root.
const mateBound = game.MateScore - 1000

type memoEntry struct {
	key         uint64
	fingerprint string
	depth       int32
	score       int32
}

// memo caches exact negamax values by (position, depth). It has a fixed
// power-of-two capacity and always replaces on collision.
type memo struct {
	entries []memoEntry
	mask    uint64
}

func newMemo(size int) *memo {
	n := 1
	for n*2 <= size {
		n *= 2
	}
	return &memo{entries: make([]memoEntry, n), mask: uint64(n - 1)}
}

func (m *memo) slot(key uint64, depth int) *memoEntry {
	h := key ^ uint64(depth)*0x9E3779B97F4A7C15
	return &m.entries[h&m.mask]
}

// probe returns the stored value for the position at this depth, adjusted
// to the current ply.
func (m *memo) probe(key uint64, fp string, depth, ply int) (int, bool) {
	entry := m.slot(key, depth)
	if entry.fingerprint == "" || entry.key != key || int(entry.depth) != depth || entry.fingerprint != fp {
		return 0, false
	}
	score := int(entry.score)
	if score > mateBound {
		score -= ply
	} else if score < -mateBound {
		score += ply
	}
	return score, true
}

func (m *memo) store(key uint64, fp string, depth, ply, score int) {
	if score > mateBound {
		score += ply
	} else if score < -mateBound {
		score -= ply
	}
	*m.slot(key, depth) = memoEntry{key: key, fingerprint: fp, depth: int32(depth), score: int32(score)}
}

func (m *memo) clear() {
	for i := range m.entries {
		m.entries[i] = memoEntry{}
	}
}

