package attack

import "github.com/duyanhHSGS/Carolyna/internal/board"

// RookAttacks returns the rook attack set from sq for the full-board occupancy.
// The first blocker on each ray is included.
func (t *Tables) RookAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.rook[sq].Attacks(occupied)
}

// BishopAttacks returns the bishop attack set from sq for the full-board occupancy.
func (t *Tables) BishopAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.bishop[sq].Attacks(occupied)
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func (t *Tables) QueenAttacks(sq board.Square, occupied board.Bitboard) board.Bitboard {
	return t.rook[sq].Attacks(occupied) | t.bishop[sq].Attacks(occupied)
}
