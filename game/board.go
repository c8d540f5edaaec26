package game

import "golang.org/x/exp/constraints"

// Piece is a signed piece code: 0 is empty, 1..6 are pawn, knight, bishop,
// rook, queen and king. Positive codes are White, negative codes are Black.
type Piece int8

const (
	Empty  Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	Bishop Piece = 3
	Rook   Piece = 4
	Queen  Piece = 5
	King   Piece = 6
)

// Kind returns the colorless piece type.
func (p Piece) Kind() Piece { return abs(p) }

// Color returns the owner of the piece. Empty squares report White.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

func (p Piece) isSlider() bool {
	k := p.Kind()
	return k == Bishop || k == Rook || k == Queen
}

var pieceLetters = [7]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the FEN letter of the piece, uppercase for White.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	l := pieceLetters[p.Kind()]
	if p < 0 {
		l += 'a' - 'A'
	}
	return l
}

// Color is the side to move, doubling as the sign of its pieces.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

func (c Color) Opponent() Color { return -c }

// index maps White to 0 and Black to 1 for per-side arrays.
func (c Color) index() int {
	if c == White {
		return 0
	}
	return 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square is row*8 + col. Row 0 is rank 8, col 0 is file a.
type Square int8

const NoSquare Square = -1

// Sq builds a square from a row and column.
func Sq(row, col int) Square { return Square(row*8 + col) }

func (s Square) Row() int { return int(s) / 8 }
func (s Square) Col() int { return int(s) % 8 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col()), '8' - byte(s.Row())})
}

// ParseSquare reads algebraic text such as "e4".
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, false
	}
	return Sq(int('8'-text[1]), int(text[0]-'a')), true
}

func onBoard(row, col int) bool { return row >= 0 && row < 8 && col >= 0 && col < 8 }

// SquareSet is a set of squares packed into 64 bits.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool { return sq >= 0 && s&(1<<uint(sq)) != 0 }

func (s *SquareSet) Add(sq Square) { *s |= 1 << uint(sq) }

func (s SquareSet) Empty() bool { return s == 0 }

// Board is the 8x8 mailbox of signed piece codes, indexed [row][col].
type Board [8][8]Piece

func (b *Board) At(sq Square) Piece { return b[sq.Row()][sq.Col()] }

func (b *Board) set(sq Square, p Piece) { b[sq.Row()][sq.Col()] = p }

func (b *Board) get(row, col int) Piece { return b[row][col] }

// CastlingRights holds the four castling flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// KingSide reports the short castling flag of c.
func (r CastlingRights) KingSide(c Color) bool {
	if c == White {
		return r&WhiteKingSide != 0
	}
	return r&BlackKingSide != 0
}

// QueenSide reports the long castling flag of c.
func (r CastlingRights) QueenSide(c Color) bool {
	if c == White {
		return r&WhiteQueenSide != 0
	}
	return r&BlackQueenSide != 0
}

func (r CastlingRights) String() string {
	if r == 0 {
		return "-"
	}
	out := make([]byte, 0, 4)
	for i, ch := range "KQkq" {
		if r&(1<<uint(i)) != 0 {
			out = append(out, byte(ch))
		}
	}
	return string(out)
}

// castlingMask[sq] is the set of rights that survive a move touching sq.
var castlingMask = func() (m [64]CastlingRights) {
	for i := range m {
		m[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	m[Sq(7, 4)] &^= WhiteKingSide | WhiteQueenSide
	m[Sq(7, 7)] &^= WhiteKingSide
	m[Sq(7, 0)] &^= WhiteQueenSide
	m[Sq(0, 4)] &^= BlackKingSide | BlackQueenSide
	m[Sq(0, 7)] &^= BlackKingSide
	m[Sq(0, 0)] &^= BlackQueenSide
	return m
}()

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// homeRow is the back rank of c.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// rookSquares returns the rook's origin and destination for a castling move.
func rookSquares(m *Move) (from, to Square) {
	row := m.From.Row()
	if m.To.Col() == 6 {
		return Sq(row, 7), Sq(row, 5)
	}
	return Sq(row, 0), Sq(row, 3)
}

// apply performs the board edits of m.
func (b *Board) apply(m Move) {
	b.set(m.From, Empty)
	if m.Promotion != Empty {
		b.set(m.To, m.Promotion)
	} else {
		b.set(m.To, m.Piece)
	}
	switch {
	case m.EnPassant:
		b[m.From.Row()][m.To.Col()] = Empty
	case m.Castling:
		rf, rt := rookSquares(&m)
		b.set(rt, b.At(rf))
		b.set(rf, Empty)
	}
}

// revert undoes apply.
func (b *Board) revert(m Move) {
	b.set(m.From, m.Piece)
	switch {
	case m.EnPassant:
		b.set(m.To, Empty)
		b[m.From.Row()][m.To.Col()] = m.Captured
	case m.Castling:
		b.set(m.To, Empty)
		rf, rt := rookSquares(&m)
		b.set(rf, b.At(rt))
		b.set(rt, Empty)
	default:
		b.set(m.To, m.Captured)
	}
}
