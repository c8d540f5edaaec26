package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// drawClock is the 75-move rule in half-moves.
	drawClock = 150
	// repetitionLimit is the fivefold repetition rule.
	repetitionLimit = 5
)

var startBoard = Board{
	{-Rook, -Knight, -Bishop, -Queen, -King, -Bishop, -Knight, -Rook},
	{-Pawn, -Pawn, -Pawn, -Pawn, -Pawn, -Pawn, -Pawn, -Pawn},
	{},
	{},
	{},
	{},
	{Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn},
	{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook},
}

// GameState is a game in progress. The board, the side to move and the
// current PositionInfo always agree with the legal-move list once a public
// method returns. A GameState must not be used from two goroutines at once.
type GameState struct {
	board   Board
	player  Color
	info    PositionInfo
	moveLog []Move
	infoLog []PositionInfo
	history []string
	counts  map[string]int
	weights Weights
}

// NewGameState returns the standard initial position with its legal moves.
func NewGameState() *GameState { return NewGameStateWith(DefaultWeights()) }

// NewGameStateWith is NewGameState with explicit evaluation weights.
func NewGameStateWith(w Weights) *GameState {
	gs := newEmpty(w)
	gs.board = startBoard
	gs.player = White
	gs.info.Castling = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	gs.info.Kings = [2]Square{Sq(7, 4), Sq(0, 4)}
	gs.start()
	return gs
}

func newEmpty(w Weights) *GameState {
	gs := &GameState{
		counts:  make(map[string]int),
		weights: w,
	}
	gs.info.EnPassant = NoSquare
	return gs
}

// start computes the first ply and records it for repetition counting.
func (gs *GameState) start() {
	gs.update()
	gs.record()
	gs.decide()
}

func (gs *GameState) record() {
	fp := gs.info.fingerprint
	gs.history = append(gs.history, fp)
	gs.counts[fp]++
}

// MakeMove plays m. It returns false, changing nothing, when m is not in
// the current legal move list.
func (gs *GameState) MakeMove(m Move) bool {
	if !slices.Contains(gs.info.moves, m) {
		return false
	}
	gs.infoLog = append(gs.infoLog, gs.info)
	gs.moveLog = append(gs.moveLog, m)
	gs.board.apply(m)

	info := &gs.info
	kind := m.Piece.Kind()
	if kind == King {
		info.Kings[gs.player.index()] = m.To
	}
	info.Castling &= castlingMask[m.From] & castlingMask[m.To]
	info.EnPassant = NoSquare
	if kind == Pawn && abs(m.To.Row()-m.From.Row()) == 2 {
		info.EnPassant = Sq((m.From.Row()+m.To.Row())/2, m.From.Col())
	}
	if kind == Pawn || m.IsCapture() {
		info.HalfMoveClock = 0
	} else {
		info.HalfMoveClock++
	}

	gs.player = gs.player.Opponent()
	gs.update()
	gs.record()
	gs.decide()
	return true
}

// UndoMove takes back the last move; it does nothing on an empty log. With
// recalc false the legal moves come from the stored snapshot instead of
// being generated again.
func (gs *GameState) UndoMove(recalc bool) {
	n := len(gs.moveLog)
	if n == 0 {
		return
	}
	fp := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	if gs.counts[fp]--; gs.counts[fp] <= 0 {
		delete(gs.counts, fp)
	}

	m := gs.moveLog[n-1]
	gs.moveLog = gs.moveLog[:n-1]
	gs.info = gs.infoLog[n-1]
	gs.infoLog = gs.infoLog[:n-1]
	gs.player = gs.player.Opponent()
	gs.board.revert(m)
	if recalc {
		gs.update()
		gs.decide()
	}
}

// Apply plays m and returns the function that takes it back. Ignored moves
// return a no-op.
func (gs *GameState) Apply(m Move) (undo func()) {
	if !gs.MakeMove(m) {
		return func() {}
	}
	return func() { gs.UndoMove(false) }
}

// update rebuilds the derived data of the current ply from the board.
func (gs *GameState) update() {
	info := &gs.info
	them := gs.player.Opponent().index()
	info.InCheck[them] = false
	info.Checkers[them] = noCheck
	info.BlockMask[them], info.CaptureMask[them] = 0, 0
	info.Winner = Ongoing

	gs.updateKingSafety(gs.player)
	gs.scan()
}

// scan walks the board once, generating moves for the side to move and
// collecting the key, the evaluation and the material census.
func (gs *GameState) scan() {
	info := &gs.info
	g := newGenerator(gs)
	var census material
	key := stateKey(gs.player, info.Castling, info.EnPassant)
	eval := 0
	for sq := Square(0); sq < 64; sq++ {
		p := gs.board.At(sq)
		if p == Empty {
			continue
		}
		key ^= pieceKey(p, sq)
		eval += gs.weights.score(p, sq)
		census.add(p, sq)
		if p.Color() == gs.player {
			g.pieceMoves(sq)
		}
	}
	info.key = key
	info.Eval = eval
	info.fingerprint = fingerprintOf(&gs.board, gs.player, info.Castling, info.EnPassant)
	info.moves = g.moves
	if census.insufficient() {
		info.Winner = Draw
	}
}

// decide settles the result of the current ply. The clock and repetition
// draws are checked before mate and stalemate.
func (gs *GameState) decide() {
	info := &gs.info
	if info.Winner == Ongoing {
		switch {
		case info.HalfMoveClock >= drawClock, gs.counts[info.fingerprint] >= repetitionLimit:
			info.Winner = Draw
		case len(info.moves) == 0 && info.InCheck[gs.player.index()]:
			info.Winner = WhiteWins
			if gs.player == White {
				info.Winner = BlackWins
			}
		case len(info.moves) == 0:
			info.Winner = Draw
		}
	}
	switch info.Winner {
	case WhiteWins:
		info.Eval = MateScore
	case BlackWins:
		info.Eval = -MateScore
	case Draw:
		info.Eval = 0
	}
	if info.Winner != Ongoing {
		info.moves = nil
	}
}

type material struct {
	heavy    bool
	knights  int
	bishops  [2]int
	bishopSq [2]Square
}

func (m *material) add(p Piece, sq Square) {
	switch p.Kind() {
	case Pawn, Rook, Queen:
		m.heavy = true
	case Knight:
		m.knights++
	case Bishop:
		i := p.Color().index()
		m.bishops[i]++
		m.bishopSq[i] = sq
	}
}

// insufficient covers K v K, K v K+minor and K+B v K+B on one square color.
func (m *material) insufficient() bool {
	if m.heavy {
		return false
	}
	minors := m.knights + m.bishops[0] + m.bishops[1]
	if minors <= 1 {
		return true
	}
	return minors == 2 && m.bishops == [2]int{1, 1} &&
		squareColor(m.bishopSq[0]) == squareColor(m.bishopSq[1])
}

func squareColor(sq Square) int { return (sq.Row() + sq.Col()) % 2 }

// Board returns a copy of the board.
func (gs *GameState) Board() Board { return gs.board }

func (gs *GameState) Player() Color { return gs.player }

// Info returns a copy of the current PositionInfo.
func (gs *GameState) Info() PositionInfo { return gs.info.clone() }

func (gs *GameState) Winner() Result { return gs.info.Winner }

func (gs *GameState) Eval() int { return gs.info.Eval }

func (gs *GameState) InCheck() bool { return gs.info.InCheck[gs.player.index()] }

func (gs *GameState) Fingerprint() string { return gs.info.fingerprint }

func (gs *GameState) Key() uint64 { return gs.info.key }

// Moves returns the legal moves of the side to move. The slice is shared and
// must not be modified.
func (gs *GameState) Moves() []Move { return gs.info.moves }

func (gs *GameState) ValidMoves() map[Square][]Move { return gs.info.ValidMoves() }

func (gs *GameState) LegalMoves(sq Square) []Move { return gs.info.LegalMoves(sq) }

// MoveLog returns the moves played so far.
func (gs *GameState) MoveLog() []Move { return slices.Clone(gs.moveLog) }

// Repetitions reports how often fp has occurred on the current line.
func (gs *GameState) Repetitions(fp string) int { return gs.counts[fp] }

// FindMove returns the legal move with the given coordinate text.
func (gs *GameState) FindMove(uci string) (Move, bool) {
	i := slices.IndexFunc(gs.info.moves, func(m Move) bool { return m.UCI() == uci })
	if i < 0 {
		return Move{}, false
	}
	return gs.info.moves[i], true
}

// Clone returns an independent copy of the game, history included.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.info = gs.info.clone()
	c.moveLog = slices.Clone(gs.moveLog)
	c.infoLog = slices.Clone(gs.infoLog)
	c.history = slices.Clone(gs.history)
	c.counts = make(map[string]int, len(gs.counts))
	for k, v := range gs.counts {
		c.counts[k] = v
	}
	return &c
}

// String draws the board with rank 8 on top.
func (gs *GameState) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		sb.WriteByte('8' - byte(r))
		for c := 0; c < 8; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(gs.board[r][c].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(gs.info.fingerprint)
	return sb.String()
}
