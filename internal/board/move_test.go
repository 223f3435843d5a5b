package board

import "testing"

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"quiet", NewMove(E2, E4), "e2e4"},
		{"corner", NewMove(A1, H8), "a1h8"},
		{"queen promotion", NewPromotion(E7, E8, Queen), "e7e8q"},
		{"rook promotion", NewPromotion(A2, A1, Rook), "a2a1r"},
		{"bishop promotion", NewPromotion(G7, H8, Bishop), "g7h8b"},
		{"knight promotion", NewPromotion(B2, B1, Knight), "b2b1n"},
		{"castling", NewCastling(E1, G1), "e1g1"},
		{"en passant", NewEnPassant(E5, D6), "e5d6"},
		{"null", NoMove, "0000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.move.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoveAccessors(t *testing.T) {
	m := NewPromotion(C7, B8, Knight)
	if m.From() != C7 || m.To() != B8 {
		t.Errorf("endpoints = %v %v", m.From(), m.To())
	}
	if !m.IsPromotion() || m.Promotion() != Knight {
		t.Errorf("promotion = %v", m.Promotion())
	}
	if NewMove(E2, E4).Promotion() != NoPieceType {
		t.Error("normal move reports a promotion")
	}
	if !NewCastling(E8, C8).IsCastling() || !NewEnPassant(D4, E3).IsEnPassant() {
		t.Error("special move flags lost")
	}
}

func TestParseMove(t *testing.T) {
	for _, s := range []string{"e2e4", "a1h8", "e7e8q", "a2a1r", "g7h8b", "b2b1n", "0000"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if m.String() != s {
			t.Errorf("ParseMove(%q).String() = %q", s, m.String())
		}
	}

	for _, s := range []string{"", "e2", "e2e", "e2e4qq", "e7e8k", "e7e8p", "e7e8Q", "z2e4", "e2e9", "a1a1", "e4e4", "h8h8q"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) succeeded", s)
		}
	}
}

func TestNewPromotionRejectsBadType(t *testing.T) {
	for _, pt := range []PieceType{Pawn, King, NoPieceType} {
		m := NewPromotion(A7, A8, pt)
		if m.IsPromotion() || m.IsCastling() || m.IsEnPassant() {
			t.Errorf("NewPromotion(a7, a8, %v) set flags %#x", pt, m.Flag())
		}
		if got := m.String(); got != "a7a8" {
			t.Errorf("NewPromotion(a7, a8, %v).String() = %q, want a7a8", pt, got)
		}
	}
}
