package attack

import "github.com/duyanhHSGS/Carolyna/internal/board"

// Knight jumps as (rank, file) deltas.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// GenerateKnightAttacks enumerates the eight knight jumps from sq and keeps the
// ones that stay on the board. Ranks and files are checked directly, so no
// file masks are needed.
func GenerateKnightAttacks(sq board.Square) board.Bitboard {
	var attacks board.Bitboard
	rank, file := sq.Rank(), sq.File()
	for _, o := range knightOffsets {
		r, f := rank+o[0], file+o[1]
		if board.OnBoard(f, r) {
			attacks = attacks.Set(board.NewSquare(f, r))
		}
	}
	return attacks
}

// GenerateKingAttacks shifts the king's square one step in all eight
// directions. The shift helpers drop anything that wraps across the a/h files.
func GenerateKingAttacks(sq board.Square) board.Bitboard {
	bb := board.SquareBB(sq)
	return bb.North() | bb.South() | bb.East() | bb.West() |
		bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()
}

// GeneratePawnAttacks returns the two forward diagonals of a pawn of color c
// standing on sq. White captures toward rank 8, Black toward rank 1.
func GeneratePawnAttacks(sq board.Square, c board.Color) board.Bitboard {
	bb := board.SquareBB(sq)
	if c == board.White {
		return bb.NorthEast() | bb.NorthWest()
	}
	return bb.SouthEast() | bb.SouthWest()
}
