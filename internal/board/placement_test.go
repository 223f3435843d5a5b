package board

import "testing"

func TestParsePlacementStart(t *testing.T) {
	p, err := ParsePlacement(StartFEN)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if p.SideToMove != White {
		t.Errorf("side to move = %v", p.SideToMove)
	}
	if p.Occupied() != Rank1|Rank2|Rank7|Rank8 {
		t.Errorf("occupied = %#x", uint64(p.Occupied()))
	}
	if p.Pieces[White][Pawn] != Rank2 || p.Pieces[Black][Pawn] != Rank7 {
		t.Error("pawns misplaced")
	}
	tests := []struct {
		sq   Square
		want Piece
	}{
		{E1, WhiteKing},
		{D8, BlackQueen},
		{B1, WhiteKnight},
		{H8, BlackRook},
		{E4, NoPiece},
	}
	for _, tc := range tests {
		if got := p.PieceAt(tc.sq); got != tc.want {
			t.Errorf("PieceAt(%v) = %v, want %v", tc.sq, got, tc.want)
		}
	}
}

func TestParsePlacementFieldOnly(t *testing.T) {
	p, err := ParsePlacement("8/8/8/3k4/8/8/8/4K2R b")
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if p.SideToMove != Black {
		t.Errorf("side to move = %v", p.SideToMove)
	}
	if p.ByColor(White) != SquareBB(E1)|SquareBB(H1) || p.ByColor(Black) != SquareBB(D5) {
		t.Errorf("colors = %#x / %#x", uint64(p.ByColor(White)), uint64(p.ByColor(Black)))
	}
}

func TestParsePlacementErrors(t *testing.T) {
	tests := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/9",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/ppppppppp",
		"8/8/8/8/8/8/8/7x",
		"8/8/8/8/8/8/8/8 x",
	}
	for _, fen := range tests {
		if _, err := ParsePlacement(fen); err == nil {
			t.Errorf("ParsePlacement(%q) succeeded", fen)
		}
	}
}

func TestPlacementString(t *testing.T) {
	p, err := ParsePlacement("8/8/8/8/8/8/8/R3K3 w")
	if err != nil {
		t.Fatal(err)
	}
	want := "8 . . . . . . . . \n" +
		"7 . . . . . . . . \n" +
		"6 . . . . . . . . \n" +
		"5 . . . . . . . . \n" +
		"4 . . . . . . . . \n" +
		"3 . . . . . . . . \n" +
		"2 . . . . . . . . \n" +
		"1 R . . . K . . . \n" +
		"  a b c d e f g h\n"
	if got := p.String(); got != want {
		t.Errorf("String() =\n%s", got)
	}
}

func TestPieceFromChar(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p := PieceFromChar(c)
		if p == NoPiece || p.String() != string(c) {
			t.Errorf("PieceFromChar(%c) = %v", c, p)
		}
	}
	if PieceFromChar('x') != NoPiece || PieceFromChar('1') != NoPiece {
		t.Error("bad characters accepted")
	}
	if NewPiece(Queen, Black).Color() != Black || NewPiece(Queen, Black).Type() != Queen {
		t.Error("NewPiece round trip")
	}
}
