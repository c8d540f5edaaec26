package game

import "strings"

// CheckKind tells how many pieces give check.
type CheckKind uint8

const (
	NoCheck CheckKind = iota
	SingleCheck
	DoubleCheck
)

// CheckSource describes the attackers of a king: none, exactly one (with its
// square and piece), or two or more.
type CheckSource struct {
	Kind   CheckKind
	Square Square
	Piece  Piece
}

var noCheck = CheckSource{Kind: NoCheck, Square: NoSquare}

func single(sq Square, p Piece) CheckSource {
	return CheckSource{Kind: SingleCheck, Square: sq, Piece: p}
}

var doubleCheck = CheckSource{Kind: DoubleCheck, Square: NoSquare}

func (c CheckSource) Any() bool { return c.Kind != NoCheck }

// Move is a fully tagged legal move. Moves are values and compare with ==.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	Promotion Piece
	Castling  bool
	EnPassant bool
	// Check is set when the moved (or promoted) piece attacks the enemy king.
	Check bool
	// Discovered names the piece whose line to the enemy king this move opens.
	Discovered CheckSource
}

// IsNull reports the zero Move.
func (m Move) IsNull() bool { return m.Piece == Empty }

// IsCapture includes en passant.
func (m Move) IsCapture() bool { return m.Captured != Empty }

// GivesCheck reports a direct or discovered check.
func (m Move) GivesCheck() bool { return m.Check || m.Discovered.Any() }

// UCI returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(pieceLetters[m.Promotion.Kind()] + 'a' - 'A')
	}
	return s
}

// Notation renders the move in the game's algebraic style.
func (m Move) Notation() string {
	var sb strings.Builder
	switch {
	case m.Castling:
		if m.To.Col() == 6 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	case m.EnPassant:
		sb.WriteString(m.From.String())
		sb.WriteByte('x')
		sb.WriteString(m.To.String())
		sb.WriteString(" e.p.")
	case m.Promotion != Empty:
		if m.IsCapture() {
			sb.WriteByte(m.From.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Promotion.Kind()])
	case m.IsCapture():
		if m.Piece.Kind() != Pawn {
			sb.WriteByte(pieceLetters[m.Piece.Kind()])
		}
		sb.WriteByte(m.From.String()[0])
		sb.WriteByte('x')
		sb.WriteString(m.To.String())
	default:
		sb.WriteString(m.From.String())
		sb.WriteString(" -> ")
		sb.WriteString(m.To.String())
	}
	if m.GivesCheck() {
		sb.WriteByte('+')
	}
	return sb.String()
}

func (m Move) String() string { return m.Notation() }
