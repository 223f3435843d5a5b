package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Placement is the piece layout of a position, one bitboard per color and
// piece type. It carries none of the game state needed to make moves.
type Placement struct {
	Pieces     [2][6]Bitboard
	SideToMove Color
}

// ParsePlacement reads the piece-placement field of a FEN string and, when
// present, the side-to-move field. Remaining fields are ignored.
func ParsePlacement(fen string) (*Placement, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid FEN: empty")
	}

	p := &Placement{SideToMove: White}
	if err := p.parsePieces(parts[0]); err != nil {
		return nil, err
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			p.SideToMove = White
		case "b":
			p.SideToMove = Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s", parts[1])
		}
	}

	return p, nil
}

func (p *Placement) parsePieces(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			p.Put(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// Put places a piece on an empty square.
func (p *Placement) Put(piece Piece, sq Square) {
	c, pt := piece.Color(), piece.Type()
	p.Pieces[c][pt] = p.Pieces[c][pt].Set(sq)
}

// ByColor returns every square holding a piece of color c.
func (p *Placement) ByColor(c Color) Bitboard {
	var b Bitboard
	for _, bb := range p.Pieces[c] {
		b |= bb
	}
	return b
}

// Occupied returns every occupied square.
func (p *Placement) Occupied() Bitboard {
	return p.ByColor(White) | p.ByColor(Black)
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Placement) PieceAt(sq Square) Piece {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt].IsSet(sq) {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// String draws the placement with rank 8 on top.
func (p *Placement) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(piece.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
