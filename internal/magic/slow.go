package magic

import "github.com/duyanhHSGS/Carolyna/internal/board"

type direction struct{ df, dr int }

var (
	rookDirections   = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4]direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

func (s Slider) directions() *[4]direction {
	if s == Rook {
		return &rookDirections
	}
	return &bishopDirections
}

// SlowAttacks walks each ray from sq until it leaves the board or hits an
// occupied square, which is included. It is the reference the lookup tables
// are built from and checked against.
func SlowAttacks(s Slider, sq board.Square, occupied board.Bitboard) board.Bitboard {
	var attacks board.Bitboard
	for _, d := range s.directions() {
		for f, r := sq.File()+d.df, sq.Rank()+d.dr; board.OnBoard(f, r); f, r = f+d.df, r+d.dr {
			to := board.NewSquare(f, r)
			attacks = attacks.Set(to)
			if occupied.IsSet(to) {
				break
			}
		}
	}
	return attacks
}

// RelevantMask returns the occupancy bits that can change the attack set of a
// slider on sq: the empty-board rays without their final square.
func RelevantMask(s Slider, sq board.Square) board.Bitboard {
	var mask board.Bitboard
	for _, d := range s.directions() {
		for f, r := sq.File()+d.df, sq.Rank()+d.dr; board.OnBoard(f+d.df, r+d.dr); f, r = f+d.df, r+d.dr {
			mask = mask.Set(board.NewSquare(f, r))
		}
	}
	return mask
}

// forEachSubset calls f for every subset of mask, starting with the empty set
// (carry-rippler enumeration).
func forEachSubset(mask board.Bitboard, f func(board.Bitboard) error) error {
	occ := board.Empty
	for {
		if err := f(occ); err != nil {
			return err
		}
		occ = (occ - mask) & mask
		if occ == 0 {
			return nil
		}
	}
}
