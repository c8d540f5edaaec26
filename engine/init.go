package engine

import (
	"log"

	"chess-game/game"
)

// Options configures an Engine. Zero fields take the DefaultOptions value.
type Options struct {
	// Depth is the search depth used by the driver when none is given.
	Depth int
	// QuiescencePlies bounds how far quiescence search extends past depth 0.
	QuiescencePlies int
	// MemoEntries is the memo capacity, rounded down to a power of two.
	MemoEntries int
	// Weights drive move ordering. Leaf scores come from the GameState.
	Weights game.Weights
	// Logger receives one info line per search. Nil keeps the engine quiet.
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Depth:           4,
		QuiescencePlies: 4,
		MemoEntries:     1 << 18,
		Weights:         game.DefaultWeights(),
	}
}

// Engine runs single-threaded searches. One Engine must not search two
// positions at the same time.
type Engine struct {
	opts  Options
	memo  *memo
	stats Stats
}

func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Depth <= 0 {
		opts.Depth = def.Depth
	}
	if opts.QuiescencePlies <= 0 {
		opts.QuiescencePlies = def.QuiescencePlies
	}
	if opts.MemoEntries <= 0 {
		opts.MemoEntries = def.MemoEntries
	}
	if opts.Weights.Material == ([7]int{}) {
		opts.Weights = def.Weights
	}
	return &Engine{opts: opts, memo: newMemo(opts.MemoEntries)}
}

func (e *Engine) Options() Options { return e.opts }

// Stats returns the counters of the last search.
func (e *Engine) Stats() Stats { return e.stats }

// Clear empties the memo, e.g. for a new game.
func (e *Engine) Clear() { e.memo.clear() }
