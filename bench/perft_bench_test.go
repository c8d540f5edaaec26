package bench

import (
	"testing"

	"chess-game/game"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func load(b *testing.B, fen string) *game.GameState {
	gs, err := game.FromFingerprint(fen)
	if err != nil {
		b.Fatalf("FromFingerprint: %v", err)
	}
	return gs
}

func benchPerft(b *testing.B, fen string, depth int) {
	gs := load(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = game.Perft(gs, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, game.StartFingerprint, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func BenchmarkPerftDetailed_Kiwipete_D2(b *testing.B) {
	gs := load(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = game.PerftDetailed(gs, 2)
	}
}
