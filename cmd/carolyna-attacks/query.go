package main

import (
	"fmt"
	"strings"

	"github.com/duyanhHSGS/Carolyna/internal/attack"
	"github.com/duyanhHSGS/Carolyna/internal/board"
)

// parsePieceType accepts a FEN letter or a piece name.
func parsePieceType(s string) (board.PieceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		if pt := board.PieceTypeFromLetter(s[0]); pt != board.NoPieceType {
			return pt, nil
		}
	}
	for pt := board.Pawn; pt <= board.King; pt++ {
		if s == strings.ToLower(pt.String()) {
			return pt, nil
		}
	}
	return board.NoPieceType, fmt.Errorf("invalid piece: %q", s)
}

func parseColor(s string) (board.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return board.White, nil
	case "b", "black":
		return board.Black, nil
	}
	return board.NoColor, fmt.Errorf("invalid color: %q", s)
}

// attackSet returns the squares a piece of type pt and color c standing on sq
// attacks, with sliders stopped by occupied.
func attackSet(t *attack.Tables, pt board.PieceType, c board.Color, sq board.Square, occupied board.Bitboard) board.Bitboard {
	switch pt {
	case board.Pawn:
		return t.PawnAttacks(sq, c)
	case board.Knight:
		return t.KnightAttacks(sq)
	case board.Bishop:
		return t.BishopAttacks(sq, occupied)
	case board.Rook:
		return t.RookAttacks(sq, occupied)
	case board.Queen:
		return t.QueenAttacks(sq, occupied)
	case board.King:
		return t.KingAttacks(sq)
	}
	return board.Empty
}

// attackers lists the kinds of pieces of color by that attack sq. Queens are
// folded into both slider masks, so they show up as "rook/queen" or
// "bishop/queen".
func attackers(t *attack.Tables, p *board.Placement, sq board.Square, by board.Color) []string {
	pieces := &p.Pieces[by]
	occupied := p.Occupied()

	var kinds []string
	if t.PawnAttackedBy(sq, pieces[board.Pawn], by) {
		kinds = append(kinds, "pawn")
	}
	if t.KnightAttackedBy(sq, pieces[board.Knight]) {
		kinds = append(kinds, "knight")
	}
	if t.KingAttackedBy(sq, pieces[board.King]) {
		kinds = append(kinds, "king")
	}
	if t.RookQueenAttackedBy(sq, pieces[board.Rook]|pieces[board.Queen], occupied) {
		kinds = append(kinds, "rook/queen")
	}
	if t.BishopQueenAttackedBy(sq, pieces[board.Bishop]|pieces[board.Queen], occupied) {
		kinds = append(kinds, "bishop/queen")
	}
	return kinds
}

// isAttacked reports whether any piece of color by attacks sq.
func isAttacked(t *attack.Tables, p *board.Placement, sq board.Square, by board.Color) bool {
	return len(attackers(t, p, sq, by)) > 0
}
