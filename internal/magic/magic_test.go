package magic

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/duyanhHSGS/Carolyna/internal/board"
)

var (
	sharedOnce   sync.Once
	sharedTables *Tables
	sharedErr    error
)

// builtTables returns a table set shared by tests that only read it.
func builtTables(t *testing.T) *Tables {
	t.Helper()
	sharedOnce.Do(func() {
		sharedTables, sharedErr = Build(context.Background())
	})
	if sharedErr != nil {
		t.Fatalf("Build: %v", sharedErr)
	}
	return sharedTables
}

func TestBuildValidates(t *testing.T) {
	tables := builtTables(t)
	if err := Validate(context.Background(), tables); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := tables.Bytes(), uint64(64*(4096+512)*8); got != want {
		t.Errorf("Bytes() = %d, want %d", got, want)
	}
}

func TestRelevantMask(t *testing.T) {
	tests := []struct {
		slider Slider
		sq     board.Square
		want   board.Bitboard
	}{
		{Rook, board.A1, 0x000101010101017E},
		{Rook, board.A4, 0x000101017E010100},
		{Rook, board.H8, 0x7E80808080808000},
		{Rook, board.E4, 0x001010106E101000},
		{Bishop, board.A1, 0x0040201008040200},
		{Bishop, board.E4, 0x0002442800284400},
		{Bishop, board.H8, 0x0040201008040200},
	}
	for _, tc := range tests {
		if got := RelevantMask(tc.slider, tc.sq); got != tc.want {
			t.Errorf("RelevantMask(%s, %s) = %#x, want %#x", tc.slider, tc.sq, uint64(got), uint64(tc.want))
		}
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		if n := RelevantMask(Rook, sq).PopCount(); n < 10 || n > 12 {
			t.Errorf("rook mask on %s has %d bits", sq, n)
		}
		if n := RelevantMask(Bishop, sq).PopCount(); n < 5 || n > 9 {
			t.Errorf("bishop mask on %s has %d bits", sq, n)
		}
	}
}

func TestSlowAttacks(t *testing.T) {
	a1Rook := SlowAttacks(Rook, board.A1, board.SquareBB(board.A1))
	if a1Rook != (board.FileA|board.Rank1)&^board.SquareBB(board.A1) || a1Rook.PopCount() != 14 {
		t.Errorf("rook on empty a1 = %#x", uint64(a1Rook))
	}

	// Blockers are included; squares behind them are not.
	occ := board.SquareBB(board.E6) | board.SquareBB(board.C4)
	got := SlowAttacks(Rook, board.E4, occ)
	if !got.IsSet(board.E6) || got.IsSet(board.E7) || !got.IsSet(board.C4) || got.IsSet(board.B4) {
		t.Errorf("rook on e4 with blockers = %#x", uint64(got))
	}

	if n := SlowAttacks(Bishop, board.D4, 0).PopCount(); n != 13 {
		t.Errorf("bishop on empty d4 attacks %d squares, want 13", n)
	}
}

// The lookup must agree with an independent move generator on random boards.
func TestAttacksMatchDragontooth(t *testing.T) {
	tables := builtTables(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20000; i++ {
		occ := board.Bitboard(rng.Uint64() & rng.Uint64())
		sq := board.Square(rng.Intn(64))

		if got, want := tables.Rook[sq].Attacks(occ), dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)); uint64(got) != want {
			t.Fatalf("rook %s occ %#x: got %#x, want %#x", sq, uint64(occ), uint64(got), want)
		}
		if got, want := tables.Bishop[sq].Attacks(occ), dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)); uint64(got) != want {
			t.Fatalf("bishop %s occ %#x: got %#x, want %#x", sq, uint64(occ), uint64(got), want)
		}
	}
}

func TestValidateDetectsMismatch(t *testing.T) {
	tables, err := Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	e := &tables.Rook[board.D4]
	e.Table[e.Index(0)] ^= board.SquareBB(board.H8)

	err = Validate(context.Background(), tables)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Validate = %v, want ErrMismatch", err)
	}
}

func TestValidateDetectsCollision(t *testing.T) {
	tables, err := Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// A zero multiplier sends every occupancy to slot 0.
	tables.Bishop[board.C1].Magic = 0

	err = Validate(context.Background(), tables)
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("Validate = %v, want ErrCollision", err)
	}
}

func TestValidateDetectsBadShape(t *testing.T) {
	tables, err := Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	tables.Rook[board.A1].Table = tables.Rook[board.A1].Table[:100]

	if err := Validate(context.Background(), tables); !errors.Is(err, ErrMismatch) {
		t.Fatalf("Validate = %v, want ErrMismatch", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Build on cancelled context = %v", err)
	}
}

func BenchmarkRookAttacks(b *testing.B) {
	tables, err := Build(context.Background())
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	occs := make([]board.Bitboard, 1024)
	for i := range occs {
		occs[i] = board.Bitboard(rng.Uint64() & rng.Uint64())
	}

	b.ResetTimer()
	var sink board.Bitboard
	for i := 0; i < b.N; i++ {
		sink ^= tables.Rook[i&63].Attacks(occs[i&1023])
	}
	_ = sink
}
