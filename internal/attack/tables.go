// Package attack answers which squares a piece attacks and whether a square is
// attacked by a given set of pieces.
//
// All lookups go through a Tables value. The host builds it once with New,
// calls Init before handing it to any goroutine, and from then on every query
// is a read-only table access that is safe to run concurrently.
package attack

import (
	"github.com/duyanhHSGS/Carolyna/internal/board"
	"github.com/duyanhHSGS/Carolyna/internal/magic"
)

// Tables holds the leaper attack tables and the magic tables sliders are
// resolved from.
type Tables struct {
	knight [64]board.Bitboard
	king   [64]board.Bitboard
	pawn   [2][64]board.Bitboard // [Color][Square]

	initialized bool

	bishop *[64]magic.Entry
	rook   *[64]magic.Entry
}

// New returns tables backed by the given magic data. The leaper tables stay
// empty until Init runs. The magic data must already be validated.
func New(m *magic.Tables) *Tables {
	return &Tables{
		bishop: &m.Bishop,
		rook:   &m.Rook,
	}
}

// Init fills the knight, king and pawn tables for all 64 squares. Calls after
// the first are no-ops. Init is not synchronized: it must return before t is
// shared.
func (t *Tables) Init() {
	if t.initialized {
		return
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		t.knight[sq] = GenerateKnightAttacks(sq)
		t.king[sq] = GenerateKingAttacks(sq)
		t.pawn[board.White][sq] = GeneratePawnAttacks(sq, board.White)
		t.pawn[board.Black][sq] = GeneratePawnAttacks(sq, board.Black)
	}

	t.initialized = true
}

// Initialized reports whether Init has run.
func (t *Tables) Initialized() bool {
	return t.initialized
}

// KnightAttacks returns the knight attack bitboard for a square.
func (t *Tables) KnightAttacks(sq board.Square) board.Bitboard {
	return t.knight[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func (t *Tables) KingAttacks(sq board.Square) board.Bitboard {
	return t.king[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func (t *Tables) PawnAttacks(sq board.Square, c board.Color) board.Bitboard {
	return t.pawn[c][sq]
}
