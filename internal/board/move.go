package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-15: flags (0=normal, 1=promotion, 2=en passant, 3=castling)
type Move uint16

// Move flags
const (
	FlagNormal    uint16 = 0 << 14
	FlagPromotion uint16 = 1 << 14
	FlagEnPassant uint16 = 2 << 14
	FlagCastling  uint16 = 3 << 14
)

// NoMove is the null move; it renders as "0000". It shares its encoding with
// NewMove(A1, A1), which is never a real move, so ParseMove rejects "a1a1".
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move. promo must be Knight, Bishop, Rook or
// Queen; any other type yields a normal move without a promotion suffix.
func NewPromotion(from, to Square, promo PieceType) Move {
	if promo < Knight || promo > Queen {
		return NewMove(from, to)
	}
	return NewMove(from, to) | Move(promo-Knight)<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return NewMove(from, to) | Move(FlagEnPassant)
}

// NewCastling creates a castling move (king's movement).
func NewCastling(from, to Square) Move {
	return NewMove(from, to) | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag.
func (m Move) Flag() uint16 {
	return uint16(m) & 0xC000
}

// Promotion returns the promotion piece type, or NoPieceType for other moves.
func (m Move) Promotion() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	return PieceType((m>>12)&3) + Knight
}

func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// String returns the UCI long algebraic form: both endpoints followed by the
// promotion letter when there is one ("e2e4", "e7e8q"). Capture, castling and
// en passant flags are not part of the wire format.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	buf := make([]byte, 0, 5)
	buf = append(buf, m.From().String()...)
	buf = append(buf, m.To().String()...)
	if m.IsPromotion() {
		buf = append(buf, m.Promotion().Letter())
	}
	return string(buf)
}

// ParseMove parses a UCI move token. Only normal and promotion moves can be
// told apart from the text alone; the board layer re-flags castling and
// en passant captures.
func ParseMove(s string) (Move, error) {
	if s == "0000" {
		return NoMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	if from == to {
		return NoMove, fmt.Errorf("invalid move string: %q: same origin and destination", s)
	}

	if len(s) == 5 {
		promo := PieceTypeFromLetter(s[4])
		if s[4] < 'a' || promo < Knight || promo > Queen {
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	return NewMove(from, to), nil
}
