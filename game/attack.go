package game

type offset struct{ dr, dc int }

var (
	knightOffsets = [8]offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	diagonals     = [4]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals   = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	kingOffsets   = [8]offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

func (d offset) diagonal() bool { return d.dr != 0 && d.dc != 0 }

// slidesAlong reports whether a piece of kind k attacks along direction d.
func slidesAlong(k Piece, d offset) bool {
	if d.diagonal() {
		return k == Bishop || k == Queen
	}
	return k == Rook || k == Queen
}

// direction returns the unit step from a to b when both share a rank, file
// or diagonal.
func direction(a, b Square) (offset, bool) {
	dr, dc := b.Row()-a.Row(), b.Col()-a.Col()
	if a == b || (dr != 0 && dc != 0 && abs(dr) != abs(dc)) {
		return offset{}, false
	}
	return offset{sign(dr), sign(dc)}, true
}

type attacker struct {
	sq    Square
	piece Piece
}

// attackers appends to buf every piece of color by that attacks sq, stopping
// once buf is full.
func (b *Board) attackers(sq Square, by Color, buf []attacker) []attacker {
	r, c := sq.Row(), sq.Col()
	full := func() bool { return len(buf) == cap(buf) }

	for _, o := range knightOffsets {
		nr, nc := r+o.dr, c+o.dc
		if onBoard(nr, nc) && b[nr][nc] == Knight*Piece(by) {
			buf = append(buf, attacker{Sq(nr, nc), b[nr][nc]})
			if full() {
				return buf
			}
		}
	}
	for _, dirs := range [2][4]offset{diagonals, orthogonals} {
		for _, d := range dirs {
			nr, nc := r+d.dr, c+d.dc
			for onBoard(nr, nc) {
				p := b[nr][nc]
				if p != Empty {
					if p.Color() == by && slidesAlong(p.Kind(), d) {
						buf = append(buf, attacker{Sq(nr, nc), p})
						if full() {
							return buf
						}
					}
					break
				}
				nr, nc = nr+d.dr, nc+d.dc
			}
		}
	}
	// A pawn of color by attacks toward row -by, so it stands at row r+by.
	pr := r + int(by)
	for _, dc := range [2]int{-1, 1} {
		if onBoard(pr, c+dc) && b[pr][c+dc] == Pawn*Piece(by) {
			buf = append(buf, attacker{Sq(pr, c+dc), b[pr][c+dc]})
			if full() {
				return buf
			}
		}
	}
	for _, o := range kingOffsets {
		nr, nc := r+o.dr, c+o.dc
		if onBoard(nr, nc) && b[nr][nc] == King*Piece(by) {
			buf = append(buf, attacker{Sq(nr, nc), b[nr][nc]})
			if full() {
				return buf
			}
		}
	}
	return buf
}

// IsAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	var buf [1]attacker
	return len(b.attackers(sq, by, buf[:0])) > 0
}

// CheckSource summarizes the attackers of sq, stopping at the second one.
func (b *Board) CheckSource(sq Square, by Color) CheckSource {
	var buf [2]attacker
	found := b.attackers(sq, by, buf[:0])
	switch len(found) {
	case 0:
		return noCheck
	case 1:
		return single(found[0].sq, found[0].piece)
	}
	return doubleCheck
}

// updateKingSafety recomputes check, masks, pins and the squares from which
// c's pieces would check the enemy king.
func (gs *GameState) updateKingSafety(c Color) {
	info := &gs.info
	i := c.index()
	king := info.Kings[i]
	src := gs.board.CheckSource(king, c.Opponent())

	info.Checkers[i] = src
	info.InCheck[i] = src.Any()
	info.BlockMask[i] = 0
	info.CaptureMask[i] = 0
	if src.Kind == SingleCheck {
		info.CaptureMask[i].Add(src.Square)
		if src.Piece.isSlider() {
			d, _ := direction(king, src.Square)
			for r, col := king.Row()+d.dr, king.Col()+d.dc; Sq(r, col) != src.Square; r, col = r+d.dr, col+d.dc {
				info.BlockMask[i].Add(Sq(r, col))
			}
		}
	}
	info.pins = gs.findPins(c)
	gs.updateCheckSquares(c)
}

// findPins returns c's pieces that shield their king from an enemy slider.
func (gs *GameState) findPins(c Color) SquareSet {
	var pins SquareSet
	king := gs.info.King(c)
	for _, d := range kingOffsets {
		shield := NoSquare
		r, col := king.Row()+d.dr, king.Col()+d.dc
		for ; onBoard(r, col); r, col = r+d.dr, col+d.dc {
			p := gs.board.get(r, col)
			if p == Empty {
				continue
			}
			if p.Color() == c {
				if shield != NoSquare {
					break
				}
				shield = Sq(r, col)
				continue
			}
			if shield != NoSquare && slidesAlong(p.Kind(), d) {
				pins.Add(shield)
			}
			break
		}
	}
	return pins
}

// isPinned reports a pinned piece leaving the line through its king.
func (gs *GameState) isPinned(from, to Square) bool {
	step, ok := direction(from, to)
	if !ok {
		return gs.info.pins.Has(from)
	}
	return gs.leavesPin(from, step)
}

// leavesPin reports whether stepping from a pinned square along step leaves
// the pin line.
func (gs *GameState) leavesPin(from Square, step offset) bool {
	if !gs.info.pins.Has(from) {
		return false
	}
	line, _ := direction(gs.info.King(gs.player), from)
	return step != line && step != (offset{-line.dr, -line.dc})
}

// updateCheckSquares fills checkSquares with, for each piece kind, the squares
// from which a piece of color c would attack the enemy king. Rays include
// their first occupied square.
func (gs *GameState) updateCheckSquares(c Color) {
	cs := &gs.info.checkSquares
	*cs = [7]SquareSet{}
	king := gs.info.King(c.Opponent())
	r, col := king.Row(), king.Col()

	// c's pawns attack toward row -c, so they check from row r+c.
	for _, dc := range [2]int{-1, 1} {
		if onBoard(r+int(c), col+dc) {
			cs[Pawn].Add(Sq(r+int(c), col+dc))
		}
	}
	for _, o := range knightOffsets {
		if onBoard(r+o.dr, col+o.dc) {
			cs[Knight].Add(Sq(r+o.dr, col+o.dc))
		}
	}
	for _, d := range kingOffsets {
		kind := Rook
		if d.diagonal() {
			kind = Bishop
		}
		for nr, nc := r+d.dr, col+d.dc; onBoard(nr, nc); nr, nc = nr+d.dr, nc+d.dc {
			cs[kind].Add(Sq(nr, nc))
			if gs.board.get(nr, nc) != Empty {
				break
			}
		}
	}
	cs[Queen] = cs[Bishop] | cs[Rook]
}

// givesDirectCheck reports whether a piece of kind k moving from -> to attacks
// the enemy king from its destination.
func (gs *GameState) givesDirectCheck(from, to Square, k Piece) bool {
	cs := &gs.info.checkSquares
	if cs[k].Has(to) {
		return true
	}
	if !k.isSlider() || !cs[Queen].Has(from) {
		return false
	}
	// A slider retreating along the ray it was blocking keeps the line open.
	king := gs.info.King(gs.player.Opponent())
	line, _ := direction(king, from)
	away, ok := direction(king, to)
	return ok && away == line && slidesAlong(k, line)
}

// discoveredCheck finds a friendly slider whose line to the enemy king runs
// through from and is not reblocked by to.
func (gs *GameState) discoveredCheck(from, to Square) CheckSource {
	if !gs.info.checkSquares[Queen].Has(from) {
		return noCheck
	}
	king := gs.info.King(gs.player.Opponent())
	line, ok := direction(king, from)
	if !ok {
		return noCheck
	}
	if d, ok := direction(king, to); ok && d == line {
		return noCheck
	}
	for r, c := from.Row()+line.dr, from.Col()+line.dc; onBoard(r, c); r, c = r+line.dr, c+line.dc {
		p := gs.board.get(r, c)
		if p == Empty {
			continue
		}
		if p.Color() == gs.player && slidesAlong(p.Kind(), line) {
			return single(Sq(r, c), p)
		}
		break
	}
	return noCheck
}

// tagChecks sets the check flags of a freshly generated move.
func (gs *GameState) tagChecks(m *Move) {
	if m.Castling || m.EnPassant {
		gs.tagBySimulation(m)
		return
	}
	k := m.Piece.Kind()
	if m.Promotion != Empty {
		k = m.Promotion.Kind()
	}
	m.Check = gs.givesDirectCheck(m.From, m.To, k)
	m.Discovered = gs.discoveredCheck(m.From, m.To)
}

// tagBySimulation classifies the checks of moves that change more than two
// squares by playing them on the board.
func (gs *GameState) tagBySimulation(m *Move) {
	direct := m.To
	if m.Castling {
		_, direct = rookSquares(m)
	}
	gs.board.apply(*m)
	var buf [4]attacker
	found := gs.board.attackers(gs.info.King(gs.player.Opponent()), gs.player, buf[:0])
	gs.board.revert(*m)

	var revealed []attacker
	for _, a := range found {
		if a.sq == direct {
			m.Check = true
		} else {
			revealed = append(revealed, a)
		}
	}
	switch len(revealed) {
	case 0:
		m.Discovered = noCheck
	case 1:
		m.Discovered = single(revealed[0].sq, revealed[0].piece)
	default:
		m.Discovered = doubleCheck
	}
}

// checkMoveSafety plays m on the board and reports whether the mover's king
// is safe afterwards.
func (gs *GameState) checkMoveSafety(m Move) bool {
	king := gs.info.King(gs.player)
	if m.Piece.Kind() == King {
		king = m.To
	}
	gs.board.apply(m)
	safe := !gs.board.IsAttacked(king, gs.player.Opponent())
	gs.board.revert(m)
	return safe
}
