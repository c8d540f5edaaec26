package game

import (
	"errors"
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

// StartFingerprint is the standard initial position.
const StartFingerprint = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

var (
	ErrKingCount       = errors.New("each side needs exactly one king")
	ErrOpponentInCheck = errors.New("side not to move is in check")
)

// placement writes the first fingerprint field.
func (b *Board) placement(sb *strings.Builder) {
	for r := 0; r < 8; r++ {
		run := 0
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == Empty {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte('0' + byte(run))
				run = 0
			}
			sb.WriteByte(p.Letter())
		}
		if run > 0 {
			sb.WriteByte('0' + byte(run))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
}

func fingerprintOf(b *Board, side Color, castling CastlingRights, ep Square) string {
	var sb strings.Builder
	sb.Grow(64)
	b.placement(&sb)
	if side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(castling.String())
	sb.WriteByte(' ')
	sb.WriteString(ep.String())
	return sb.String()
}

// FromFingerprint builds a game from the first four FEN fields. A fifth
// field, when present, sets the half-move clock; anything after is ignored.
func FromFingerprint(fp string) (*GameState, error) {
	return FromFingerprintWith(fp, DefaultWeights())
}

// FromFingerprintWith is FromFingerprint with explicit evaluation weights.
func FromFingerprintWith(fp string, w Weights) (*GameState, error) {
	gb, err := gm.ParseFEN(strings.Join(strings.Fields(fp), " "))
	if err != nil {
		return nil, fmt.Errorf("parse fingerprint %q: %w", fp, err)
	}

	gs := newEmpty(w)
	kings := [2]int{}
	for sq := gm.Square(0); sq < 64; sq++ {
		p := gb.PieceAt(sq)
		if p == gm.NoPiece {
			continue
		}
		// goosemg counts squares from a1; rows here count from rank 8.
		ours := Piece(p.Type())
		if p.Color() == gm.Black {
			ours = -ours
		}
		at := Sq(7-int(sq)/8, int(sq)%8)
		gs.board.set(at, ours)
		if ours.Kind() == King {
			gs.info.Kings[ours.Color().index()] = at
			kings[ours.Color().index()]++
		}
	}
	if kings != [2]int{1, 1} {
		return nil, fmt.Errorf("parse fingerprint %q: %w", fp, ErrKingCount)
	}

	gs.player = White
	if gb.SideToMove() == gm.Black {
		gs.player = Black
	}
	gs.info.Castling = parseCastling(strings.Fields(gb.ToFEN())[2])
	gs.info.Castling &= gs.homeCastling()
	if ep := gb.EnPassantSquare(); ep != gm.NoSquare {
		gs.info.EnPassant = Sq(7-int(ep)/8, int(ep)%8)
	}
	gs.info.HalfMoveClock = gb.HalfmoveClock()

	if gs.board.IsAttacked(gs.info.King(gs.player.Opponent()), gs.player) {
		return nil, fmt.Errorf("parse fingerprint %q: %w", fp, ErrOpponentInCheck)
	}
	gs.start()
	return gs, nil
}

func parseCastling(field string) CastlingRights {
	var r CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			r |= WhiteKingSide
		case 'Q':
			r |= WhiteQueenSide
		case 'k':
			r |= BlackKingSide
		case 'q':
			r |= BlackQueenSide
		}
	}
	return r
}

// homeCastling drops rights whose king or rook is not on its home square.
func (gs *GameState) homeCastling() CastlingRights {
	var r CastlingRights
	for _, c := range [2]Color{White, Black} {
		row := homeRow(c)
		if gs.board.get(row, 4) != King*Piece(c) {
			continue
		}
		ks, qs := WhiteKingSide, WhiteQueenSide
		if c == Black {
			ks, qs = BlackKingSide, BlackQueenSide
		}
		if gs.board.get(row, 7) == Rook*Piece(c) {
			r |= ks
		}
		if gs.board.get(row, 0) == Rook*Piece(c) {
			r |= qs
		}
	}
	return r
}
