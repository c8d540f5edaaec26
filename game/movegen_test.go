package game

import "testing"

func TestDoubleCheckAllowsOnlyKingMoves(t *testing.T) {
	// Rook e8 and knight d3 both attack the king on e1.
	gs := mustLoad(t, "4r1k1/8/8/8/8/3n4/8/R3K2R w KQ -")
	if got := gs.info.Checkers[White.index()].Kind; got != DoubleCheck {
		t.Fatalf("checkers: got %v want DoubleCheck", got)
	}
	if !gs.info.BlockMask[White.index()].Empty() || !gs.info.CaptureMask[White.index()].Empty() {
		t.Fatalf("double check must leave block and capture masks empty")
	}
	moves := gs.Moves()
	if len(moves) != 3 {
		t.Fatalf("double check moves: got %d want 3 (%v)", len(moves), moves)
	}
	for _, m := range moves {
		if m.Piece.Kind() != King {
			t.Fatalf("non-king move %s generated in double check", m.UCI())
		}
	}
}

func TestSingleCheckMasks(t *testing.T) {
	// Rook a8 checks the king on e8 along the rank.
	gs := mustLoad(t, "R3k3/8/8/8/8/8/5n2/4K3 b - -")
	i := Black.index()
	if !gs.info.InCheck[i] {
		t.Fatalf("expected black to be in check")
	}
	a8, _ := ParseSquare("a8")
	if gs.info.CaptureMask[i] != SquareSet(1)<<uint(a8) {
		t.Fatalf("capture mask: got %b", gs.info.CaptureMask[i])
	}
	for _, name := range []string{"b8", "c8", "d8"} {
		sq, _ := ParseSquare(name)
		if !gs.info.BlockMask[i].Has(sq) {
			t.Fatalf("block mask is missing %s", name)
		}
	}
	for _, m := range gs.Moves() {
		if m.Piece.Kind() == King {
			continue
		}
		if m.To.String() != "d8" && m.To.String() != "b8" && m.To.String() != "c8" && m.To.String() != "a8" {
			t.Fatalf("move %s does not answer the check", m.UCI())
		}
	}
}

func TestPinnedPieces(t *testing.T) {
	gs := mustLoad(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - -")
	e2, _ := ParseSquare("e2")
	if got := gs.LegalMoves(e2); len(got) != 0 {
		t.Fatalf("pinned bishop moves: got %v want none", got)
	}

	gs = mustLoad(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - -")
	got := gs.LegalMoves(e2)
	if len(got) != 5 {
		t.Fatalf("pinned rook moves: got %d want 5 (%v)", len(got), got)
	}
	for _, m := range got {
		if m.To.Col() != e2.Col() {
			t.Fatalf("pinned rook left its file with %s", m.UCI())
		}
	}
}

func TestCastlingRules(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"both free", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -", true, true},
		{"f1 attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ -", false, true},
		{"b1 attacked only", "1r2k3/8/8/8/8/8/8/R3K2R w KQ -", true, true},
		{"d1 attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ -", true, false},
		{"in check", "4r1k1/8/8/8/8/8/8/R3K2R w KQ -", false, false},
		{"knight in the way", "4k3/8/8/8/8/8/8/RN2K1NR w KQ -", false, false},
		{"no rights", "4k3/8/8/8/8/8/8/R3K2R w - -", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := mustLoad(t, tc.fen)
			_, ks := gs.FindMove("e1g1")
			_, qs := gs.FindMove("e1c1")
			if ks != tc.kingSide || qs != tc.queenSide {
				t.Fatalf("castling: got O-O=%v O-O-O=%v want %v %v", ks, qs, tc.kingSide, tc.queenSide)
			}
		})
	}
}

func TestEnPassantLegality(t *testing.T) {
	// Taking en passant would clear both pawns off the fifth rank.
	gs := mustLoad(t, "8/8/8/K2pP2r/8/8/8/7k w - d6")
	if _, ok := gs.FindMove("e5d6"); ok {
		t.Fatalf("en passant exposing the king along the rank was generated")
	}
	if _, ok := gs.FindMove("e5e6"); !ok {
		t.Fatalf("e5e6 should stay legal")
	}

	// The double-pushed pawn gives check; capturing it en passant answers it.
	gs = mustLoad(t, "8/8/8/2k5/3Pp3/8/8/4K3 b - d3")
	if !gs.InCheck() {
		t.Fatalf("expected black to be in check")
	}
	m, ok := gs.FindMove("e4d3")
	if !ok || !m.EnPassant {
		t.Fatalf("en passant capture of the checking pawn missing: %v %v", m, ok)
	}
}

func TestPromotionsGenerated(t *testing.T) {
	gs := mustLoad(t, "1n5k/P7/8/8/8/8/8/7K w - -")
	a7, _ := ParseSquare("a7")
	var kinds []Piece
	for _, m := range gs.LegalMoves(a7) {
		if m.To.String() == "a8" {
			kinds = append(kinds, m.Promotion)
		}
	}
	want := []Piece{Queen, Rook, Bishop, Knight}
	if len(kinds) != len(want) {
		t.Fatalf("promotions on a8: got %v want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("promotion %d: got %d want %d", i, kinds[i], want[i])
		}
	}
}

// walkMoves visits every move of the tree to depth with the move made.
func walkMoves(gs *GameState, depth int, visit func(m Move, mover Color)) {
	if depth == 0 {
		return
	}
	for _, m := range gs.Moves() {
		mover := gs.player
		gs.MakeMove(m)
		visit(m, mover)
		walkMoves(gs, depth-1, visit)
		gs.UndoMove(false)
	}
}

func TestMovesNeverExposeOwnKing(t *testing.T) {
	for _, fen := range []string{kiwipete, position3, position4, position5} {
		gs := mustLoad(t, fen)
		walkMoves(gs, 3, func(m Move, mover Color) {
			if gs.board.IsAttacked(gs.info.King(mover), mover.Opponent()) {
				t.Fatalf("%s: %s leaves the %s king attacked", fen, m.UCI(), mover)
			}
		})
	}
}

func TestCheckTagsMatchPosition(t *testing.T) {
	for _, fen := range []string{kiwipete, position3, position4, position5, position6} {
		gs := mustLoad(t, fen)
		walkMoves(gs, 3, func(m Move, _ Color) {
			if m.GivesCheck() != gs.InCheck() {
				t.Fatalf("%s: %s tagged check=%v discovered=%v but opponent in check=%v",
					fen, m.UCI(), m.Check, m.Discovered, gs.InCheck())
			}
			if gs.InCheck() && gs.info.Checkers[gs.player.index()].Kind == DoubleCheck && !(m.Check && m.Discovered.Any()) && m.Discovered.Kind != DoubleCheck {
				t.Fatalf("%s: %s gives double check but is tagged %+v", fen, m.UCI(), m)
			}
		})
	}
}

func TestDiscoveredCheckTag(t *testing.T) {
	gs := mustLoad(t, "4k3/8/8/8/8/8/4B3/4R1K1 w - -")
	m, ok := gs.FindMove("e2d3")
	if !ok {
		t.Fatalf("e2d3 missing")
	}
	e1, _ := ParseSquare("e1")
	if m.Check || m.Discovered != single(e1, Rook) {
		t.Fatalf("e2d3: got check=%v discovered=%+v want discovered rook on e1", m.Check, m.Discovered)
	}
}
