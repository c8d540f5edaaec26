package game

import "testing"

func TestNotation(t *testing.T) {
	cases := []struct {
		fen  string
		uci  string
		want string
	}{
		{StartFingerprint, "e2e4", "e2 -> e4"},
		{StartFingerprint, "g1f3", "g1 -> f3"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -", "e1c1", "O-O-O"},
		{"5k2/8/8/8/8/8/8/4K2R w K -", "e1g1", "O-O+"},
		{"k7/8/8/3pP3/8/8/8/7K w - d6", "e5d6", "e5xd6 e.p."},
		{"1n5k/P7/8/8/8/8/8/7K w - -", "a7a8q", "a8=Q"},
		{"1n5k/P7/8/8/8/8/8/7K w - -", "a7b8q", "axb8=Q+"},
		{"1n5k/P7/8/8/8/8/8/7K w - -", "a7b8r", "axb8=R+"},
		{"1n5k/P7/8/8/8/8/8/7K w - -", "a7b8n", "axb8=N"},
		{"4k3/8/8/3p4/8/4N3/8/4K3 w - -", "e3d5", "Nexd5"},
		{"4k3/8/8/3p4/4P3/8/8/4K3 w - -", "e4d5", "exd5"},
		{"4k3/8/8/8/8/8/8/R3K3 w - -", "a1a8", "a1 -> a8+"},
		{"4k3/8/8/8/8/8/4B3/4R1K1 w - -", "e2d3", "e2 -> d3+"},
	}
	for _, tc := range cases {
		gs := mustLoad(t, tc.fen)
		m, ok := gs.FindMove(tc.uci)
		if !ok {
			t.Fatalf("%s: move %s not found", tc.fen, tc.uci)
		}
		if got := m.Notation(); got != tc.want {
			t.Fatalf("%s %s: got %q want %q", tc.fen, tc.uci, got, tc.want)
		}
	}
}

func TestUCI(t *testing.T) {
	if got := (Move{}).UCI(); got != "0000" {
		t.Fatalf("null move: got %q", got)
	}
	gs := mustLoad(t, "1n5k/P7/8/8/8/8/8/7K w - -")
	for _, uci := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "h1g2"} {
		if _, ok := gs.FindMove(uci); !ok {
			t.Fatalf("move %s not found", uci)
		}
	}
}
