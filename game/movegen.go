package game

var promotionOrder = [4]Piece{Queen, Rook, Bishop, Knight}

// generator collects legal moves for the side to move. It reads the king
// safety data of the current ply and never changes the board beyond
// temporary simulations.
type generator struct {
	gs      *GameState
	us      Color
	checks  CheckSource
	targets SquareSet // squares non-king moves may land on
	moves   []Move
}

func newGenerator(gs *GameState) *generator {
	us := gs.player
	i := us.index()
	g := &generator{
		gs:      gs,
		us:      us,
		checks:  gs.info.Checkers[i],
		targets: ^SquareSet(0),
		moves:   make([]Move, 0, 48),
	}
	if g.checks.Kind == SingleCheck {
		g.targets = gs.info.BlockMask[i] | gs.info.CaptureMask[i]
	}
	return g
}

// pieceMoves generates the legal moves of the piece on sq.
func (g *generator) pieceMoves(sq Square) {
	p := g.gs.board.At(sq)
	if p == Empty || p.Color() != g.us {
		return
	}
	if g.checks.Kind == DoubleCheck && p.Kind() != King {
		return
	}
	switch p.Kind() {
	case Pawn:
		g.pawnMoves(sq, p)
	case Knight:
		g.knightMoves(sq, p)
	case Bishop:
		g.rayMoves(sq, p, diagonals[:])
	case Rook:
		g.rayMoves(sq, p, orthogonals[:])
	case Queen:
		g.rayMoves(sq, p, diagonals[:])
		g.rayMoves(sq, p, orthogonals[:])
	case King:
		g.kingMoves(sq, p)
	}
}

// add tags and appends a non-king move that has passed the check and pin
// filters.
func (g *generator) add(m Move) {
	g.gs.tagChecks(&m)
	g.moves = append(g.moves, m)
}

func (g *generator) allowed(from, to Square) bool {
	return g.targets.Has(to) && !g.gs.isPinned(from, to)
}

func (g *generator) pawnMoves(from Square, p Piece) {
	b := &g.gs.board
	r, c := from.Row(), from.Col()
	fwd := -int(g.us)
	lastRow := homeRow(g.us.Opponent())

	push := func(to Square, captured Piece) {
		if !g.allowed(from, to) {
			return
		}
		if to.Row() == lastRow {
			for _, k := range promotionOrder {
				g.add(Move{From: from, To: to, Piece: p, Captured: captured, Promotion: k * Piece(g.us)})
			}
			return
		}
		g.add(Move{From: from, To: to, Piece: p, Captured: captured})
	}

	if onBoard(r+fwd, c) && b.get(r+fwd, c) == Empty {
		push(Sq(r+fwd, c), Empty)
		startRow := homeRow(g.us) + fwd
		if r == startRow && b.get(r+2*fwd, c) == Empty {
			push(Sq(r+2*fwd, c), Empty)
		}
	}
	for _, dc := range [2]int{-1, 1} {
		nr, nc := r+fwd, c+dc
		if !onBoard(nr, nc) {
			continue
		}
		to := Sq(nr, nc)
		if target := b.get(nr, nc); target != Empty && target.Color() != g.us {
			push(to, target)
		} else if target == Empty && to == g.gs.info.EnPassant {
			// The captured pawn sits beside us; simulation covers pins
			// through both vacated squares and checks it resolves.
			m := Move{From: from, To: to, Piece: p, Captured: Pawn * Piece(g.us.Opponent()), EnPassant: true}
			if b.get(r, nc) == m.Captured && g.gs.checkMoveSafety(m) {
				g.add(m)
			}
		}
	}
}

func (g *generator) knightMoves(from Square, p Piece) {
	if g.gs.info.pins.Has(from) {
		return
	}
	r, c := from.Row(), from.Col()
	for _, o := range knightOffsets {
		nr, nc := r+o.dr, c+o.dc
		if !onBoard(nr, nc) {
			continue
		}
		target := g.gs.board.get(nr, nc)
		if target != Empty && target.Color() == g.us {
			continue
		}
		if to := Sq(nr, nc); g.targets.Has(to) {
			g.add(Move{From: from, To: to, Piece: p, Captured: target})
		}
	}
}

func (g *generator) rayMoves(from Square, p Piece, dirs []offset) {
	r, c := from.Row(), from.Col()
	for _, d := range dirs {
		if g.gs.leavesPin(from, d) {
			continue
		}
		for nr, nc := r+d.dr, c+d.dc; onBoard(nr, nc); nr, nc = nr+d.dr, nc+d.dc {
			target := g.gs.board.get(nr, nc)
			if target != Empty && target.Color() == g.us {
				break
			}
			if to := Sq(nr, nc); g.targets.Has(to) {
				g.add(Move{From: from, To: to, Piece: p, Captured: target})
			}
			if target != Empty {
				break
			}
		}
	}
}

func (g *generator) kingMoves(from Square, p Piece) {
	r, c := from.Row(), from.Col()
	for _, o := range kingOffsets {
		nr, nc := r+o.dr, c+o.dc
		if !onBoard(nr, nc) {
			continue
		}
		target := g.gs.board.get(nr, nc)
		if target != Empty && target.Color() == g.us {
			continue
		}
		m := Move{From: from, To: Sq(nr, nc), Piece: p, Captured: target}
		if g.gs.checkMoveSafety(m) {
			g.add(m)
		}
	}
	g.castlingMoves(from, p)
}

func (g *generator) castlingMoves(from Square, p Piece) {
	info := &g.gs.info
	row := homeRow(g.us)
	if info.InCheck[g.us.index()] || from != Sq(row, 4) {
		return
	}
	b := &g.gs.board
	them := g.us.Opponent()
	rook := Rook * Piece(g.us)
	free := func(cols ...int) bool {
		for _, col := range cols {
			if b.get(row, col) != Empty {
				return false
			}
		}
		return true
	}
	safe := func(cols ...int) bool {
		for _, col := range cols {
			if b.IsAttacked(Sq(row, col), them) {
				return false
			}
		}
		return true
	}
	if info.Castling.KingSide(g.us) && b.get(row, 7) == rook && free(5, 6) && safe(5, 6) {
		g.add(Move{From: from, To: Sq(row, 6), Piece: p, Castling: true})
	}
	if info.Castling.QueenSide(g.us) && b.get(row, 0) == rook && free(1, 2, 3) && safe(3, 2) {
		g.add(Move{From: from, To: Sq(row, 2), Piece: p, Castling: true})
	}
}
