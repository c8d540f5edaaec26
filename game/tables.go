package game

// Table is a piece-square table indexed [row][col] from White's view of the
// board (row 0 is rank 8).
type Table [8][8]int

// Weights is the immutable evaluation data: material values by piece kind and
// piece-square tables by side and kind. The position score is
// Material[kind] + SquareScale*Squares[side][kind][row][col], summed with the
// piece's sign.
type Weights struct {
	Material    [7]int
	Squares     [2][7]Table
	SquareScale int
}

// Value returns the material value of a piece kind.
func (w *Weights) Value(p Piece) int { return w.Material[p.Kind()] }

// SquareValue returns the table entry for piece p on sq.
func (w *Weights) SquareValue(p Piece, sq Square) int {
	return w.Squares[p.Color().index()][p.Kind()][sq.Row()][sq.Col()]
}

// score is the signed contribution of p standing on sq.
func (w *Weights) score(p Piece, sq Square) int {
	v := w.Material[p.Kind()] + w.SquareScale*w.SquareValue(p, sq)
	if p < 0 {
		return -v
	}
	return v
}

var knightTable = Table{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

var bishopTable = Table{
	{4, 3, 2, 1, 1, 2, 3, 4},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{4, 3, 2, 1, 1, 2, 3, 4},
}

var rookTable = Table{
	{4, 3, 4, 4, 4, 4, 3, 4},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{4, 3, 4, 4, 4, 4, 3, 4},
}

var queenTable = Table{
	{1, 1, 1, 3, 1, 1, 1, 1},
	{1, 2, 3, 3, 3, 1, 1, 1},
	{1, 4, 3, 3, 3, 4, 2, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 4, 3, 3, 3, 4, 2, 1},
	{1, 1, 2, 3, 3, 1, 1, 1},
	{1, 1, 1, 3, 1, 1, 1, 1},
}

var whitePawnTable = Table{
	{8, 8, 8, 8, 8, 8, 8, 8},
	{8, 8, 8, 8, 8, 8, 8, 8},
	{5, 6, 6, 7, 7, 6, 6, 5},
	{2, 3, 3, 5, 5, 3, 3, 2},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{1, 1, 1, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

func mirror(t Table) Table {
	var out Table
	for r := 0; r < 8; r++ {
		out[r] = t[7-r]
	}
	return out
}

// DefaultWeights returns a fresh copy of the built-in weights: centipawn
// material and piece-square entries worth a tenth of a pawn each. Only the
// pawn table is flipped for Black; the piece tables are shared as is.
func DefaultWeights() Weights {
	w := Weights{
		Material:    [7]int{0, 100, 300, 300, 500, 900, 0},
		SquareScale: 10,
	}
	white := [7]Table{Pawn: whitePawnTable, Knight: knightTable, Bishop: bishopTable, Rook: rookTable, Queen: queenTable}
	w.Squares[0] = white
	w.Squares[1] = white
	w.Squares[1][Pawn] = mirror(whitePawnTable)
	return w
}
