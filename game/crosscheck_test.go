package game

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

func ourMoves(gs *GameState) []string {
	out := make([]string, 0, len(gs.Moves()))
	for _, m := range gs.Moves() {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

func dragonMoves(fp string) []string {
	board := dragontoothmg.ParseFen(fp + " 0 1")
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	slices.Sort(out)
	return out
}

// Walks fixed pseudo-random games and compares the legal move set with
// dragontoothmg at every ply.
func TestLegalMovesMatchDragontooth(t *testing.T) {
	starts := []string{StartFingerprint, kiwipete, position3, position4, position5, position6}
	for si, start := range starts {
		for game := 0; game < 8; game++ {
			gs := mustLoad(t, start)
			for ply := 0; ply < 60 && gs.Winner() == Ongoing; ply++ {
				fp := gs.Fingerprint()
				ours, theirs := ourMoves(gs), dragonMoves(fp)
				if !slices.Equal(ours, theirs) {
					t.Fatalf("start %d game %d ply %d %s:\nours   %v\ntheirs %v", si, game, ply, fp, ours, theirs)
				}
				moves := gs.Moves()
				gs.MakeMove(moves[(ply*7+game*13+si)%len(moves)])
			}
		}
	}
}

func TestPerftMatchesDragontoothDivide(t *testing.T) {
	gs := mustLoad(t, position5)
	ours := PerftDivide(gs, 2)
	board := dragontoothmg.ParseFen(position5)
	for _, m := range board.GenerateLegalMoves() {
		m := m
		unapply := board.Apply(m)
		want := uint64(len(board.GenerateLegalMoves()))
		unapply()
		if got := ours[m.String()]; got != want {
			t.Fatalf("divide %s: got %d want %d", m.String(), got, want)
		}
	}
}
