package engine

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"chess-game/game"
)

func load(t testing.TB, fp string) *game.GameState {
	t.Helper()
	gs, err := game.FromFingerprint(fp)
	if err != nil {
		t.Fatalf("load %q: %v", fp, err)
	}
	return gs
}

// minimax is negamax without pruning or memo, bottoming out in the same
// quiescence search.
func minimax(e *Engine, gs *game.GameState, depth, ply, color int) int {
	if depth <= 0 || gs.Winner() != game.Ongoing {
		return e.quiescence(gs, ply, e.opts.QuiescencePlies, -MaxScore, MaxScore, color)
	}
	best := -MaxScore
	for _, m := range gs.Moves() {
		score := -withMove(gs, m, func() int { return minimax(e, gs, depth-1, ply+1, -color) })
		if score > best {
			best = score
		}
	}
	return best
}

var searchPositions = []string{
	game.StartFingerprint,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 b - -",
	"4k3/8/8/3q4/8/8/8/3RK3 w - -",
}

func TestNegamaxMatchesMinimax(t *testing.T) {
	for _, fp := range searchPositions {
		gs := load(t, fp)
		e := New(Options{QuiescencePlies: 2})
		color := int(gs.Player())
		want := minimax(e, gs, 2, 0, color)
		if got := e.Negamax(gs, 2, -MaxScore, MaxScore, color); got != want {
			t.Fatalf("%s: negamax %d, minimax %d", fp, got, want)
		}
		// The second call is answered from the memo.
		if got := e.Negamax(gs, 2, -MaxScore, MaxScore, color); got != want {
			t.Fatalf("%s: memoized negamax %d, minimax %d", fp, got, want)
		}
		if e.Stats().MemoHits == 0 {
			t.Fatalf("%s: repeated search never hit the memo", fp)
		}
		if got := gs.Fingerprint(); got != fp {
			t.Fatalf("search left the position at %s", got)
		}
	}
}

func TestMemoStoresExactValues(t *testing.T) {
	gs := load(t, searchPositions[1])
	e := New(Options{QuiescencePlies: 2})
	color := int(gs.Player())
	got := e.Negamax(gs, 3, -MaxScore, MaxScore, color)
	stored, ok := e.memo.probe(gs.Key(), gs.Fingerprint(), 3, 0)
	if !ok {
		t.Fatalf("full-window root value was not stored")
	}
	if stored != got {
		t.Fatalf("memo holds %d, search returned %d", stored, got)
	}
	if fresh := New(Options{QuiescencePlies: 2}).Negamax(gs, 3, -MaxScore, MaxScore, color); fresh != stored {
		t.Fatalf("memo holds %d, recomputation gives %d", stored, fresh)
	}
}

func TestFindsMateInOne(t *testing.T) {
	gs := load(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - -")
	res := New(DefaultOptions()).Search(gs, 2)
	if res.Move.UCI() != "a1a8" {
		t.Fatalf("best move: got %s want a1a8", res.Move.UCI())
	}
	if res.Score != game.MateScore-1 {
		t.Fatalf("score: got %d want %d", res.Score, game.MateScore-1)
	}
}

func TestAvoidsMateInOne(t *testing.T) {
	gs := load(t, searchPositions[3])
	m := New(DefaultOptions()).FindBestMove(gs, 2)
	undo := gs.Apply(m)
	defer undo()
	for _, reply := range gs.Moves() {
		mated := withMove(gs, reply, func() int {
			if gs.Winner() == game.WhiteWins {
				return 1
			}
			return 0
		})
		if mated == 1 {
			t.Fatalf("%s allows %s mate", m.UCI(), reply.UCI())
		}
	}
}

func TestCapturesHangingQueen(t *testing.T) {
	gs := load(t, searchPositions[4])
	for depth := 1; depth <= 3; depth++ {
		if m := New(DefaultOptions()).FindBestMove(gs, depth); m.UCI() != "d1d5" {
			t.Fatalf("depth %d: got %s want d1d5", depth, m.UCI())
		}
	}
}

func TestNoLegalMoves(t *testing.T) {
	gs := load(t, "7k/5Q2/6K1/8/8/8/8/8 b - -")
	res := New(DefaultOptions()).Search(gs, 3)
	if !res.Move.IsNull() || res.Score != 0 {
		t.Fatalf("stalemate: got move %s score %d", res.Move.UCI(), res.Score)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	gs := game.NewGameState()
	a := New(DefaultOptions()).Search(gs, 3)
	b := New(DefaultOptions()).Search(gs, 3)
	if a.Move != b.Move || a.Score != b.Score || a.Stats != b.Stats {
		t.Fatalf("two searches differ: %+v vs %+v", a, b)
	}
	if gs.Fingerprint() != game.StartFingerprint || len(gs.MoveLog()) != 0 {
		t.Fatalf("search changed the game")
	}
}

func TestSearchLogsInfoLine(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = log.New(&buf, "", 0)
	New(opts).Search(game.NewGameState(), 2)
	if line := buf.String(); !strings.HasPrefix(line, "info depth 2 score cp ") || !strings.Contains(line, " pv ") {
		t.Fatalf("unexpected log line %q", line)
	}
}
