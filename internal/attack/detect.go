package attack

import "github.com/duyanhHSGS/Carolyna/internal/board"

// The predicates below place the attacking piece kind on the target square and
// intersect its attack pattern with the real attackers. Attacker masks must
// already be filtered to the right piece kind and color; queens are passed in
// both the rook and the bishop masks by the caller.

// PawnAttackedBy reports whether any pawn of color by in attackers attacks
// target. A pawn of color by attacks target exactly when a pawn of the other
// color on target would attack the pawn's square.
func (t *Tables) PawnAttackedBy(target board.Square, attackers board.Bitboard, by board.Color) bool {
	return t.pawn[by.Other()][target]&attackers != 0
}

// KnightAttackedBy reports whether any knight in attackers attacks target.
func (t *Tables) KnightAttackedBy(target board.Square, attackers board.Bitboard) bool {
	return t.knight[target]&attackers != 0
}

// KingAttackedBy reports whether a king in attackers is adjacent to target.
func (t *Tables) KingAttackedBy(target board.Square, attackers board.Bitboard) bool {
	return t.king[target]&attackers != 0
}

// RookQueenAttackedBy reports whether any rook or queen in attackers reaches
// target along a rank or file given the occupancy.
func (t *Tables) RookQueenAttackedBy(target board.Square, attackers, occupied board.Bitboard) bool {
	return t.rook[target].Attacks(occupied)&attackers != 0
}

// BishopQueenAttackedBy reports whether any bishop or queen in attackers
// reaches target along a diagonal given the occupancy.
func (t *Tables) BishopQueenAttackedBy(target board.Square, attackers, occupied board.Bitboard) bool {
	return t.bishop[target].Attacks(occupied)&attackers != 0
}
