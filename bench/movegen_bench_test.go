package bench

import (
	"testing"

	"chess-game/engine"
	"chess-game/game"
)

// Each make regenerates the reply list, so this measures generation too.
func benchMakeUndo(b *testing.B, fen string, recalc bool) {
	gs := load(b, fen)
	moves := gs.Moves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if !gs.MakeMove(m) {
				b.Fatalf("illegal move in cached list: %v", m)
			}
			gs.UndoMove(recalc)
		}
	}
}

func BenchmarkMakeUndo_Initial(b *testing.B) {
	benchMakeUndo(b, game.StartFingerprint, false)
}

func BenchmarkMakeUndo_Kiwipete(b *testing.B) {
	benchMakeUndo(b, kiwipete, false)
}

func BenchmarkMakeUndoRecalc_Kiwipete(b *testing.B) {
	benchMakeUndo(b, kiwipete, true)
}

func BenchmarkOrderMoves_Kiwipete(b *testing.B) {
	gs := load(b, kiwipete)
	w := game.DefaultWeights()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.OrderMoves(gs.Moves(), &w)
	}
}

func benchSearch(b *testing.B, fen string, depth int) {
	gs := load(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.New(engine.DefaultOptions()).Search(gs, depth)
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, game.StartFingerprint, 3)
}

func BenchmarkSearch_Kiwipete_D2(b *testing.B) {
	benchSearch(b, kiwipete, 2)
}
