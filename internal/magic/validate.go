package magic

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/duyanhHSGS/Carolyna/internal/board"
)

var (
	// ErrCollision means two occupancies with different attack sets share a slot.
	ErrCollision = errors.New("magic: hash collision")
	// ErrMismatch means a slot disagrees with ray casting, or the entry's
	// shape (mask, shift, table length) is wrong.
	ErrMismatch = errors.New("magic: attack table mismatch")
)

// Validate checks that every entry is a perfect hash of its relevant
// occupancies onto the correct attack sets. It enumerates each masked
// occupancy once and is meant to run when a table set is produced or loaded,
// not per query.
func Validate(ctx context.Context, t *Tables) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, s := range Sliders {
		entries := t.Entries(s)
		for sq := board.A1; sq <= board.H8; sq++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return validateEntry(s, sq, &entries[sq])
			})
		}
	}
	return g.Wait()
}

func validateEntry(s Slider, sq board.Square, e *Entry) error {
	if want := RelevantMask(s, sq); e.Mask != want {
		return fmt.Errorf("%w: %s on %s has mask %#x, want %#x", ErrMismatch, s, sq, uint64(e.Mask), uint64(want))
	}
	if e.Shift < 64-20 || e.Shift > 63 || len(e.Table) != 1<<(64-e.Shift) {
		return fmt.Errorf("%w: %s on %s has shift %d and %d slots", ErrMismatch, s, sq, e.Shift, len(e.Table))
	}

	expected := make([]board.Bitboard, len(e.Table))
	filled := make([]bool, len(e.Table))
	return forEachSubset(e.Mask, func(occ board.Bitboard) error {
		idx := e.Index(occ)
		want := SlowAttacks(s, sq, occ)
		if filled[idx] && expected[idx] != want {
			return fmt.Errorf("%w: %s on %s, slot %d, occupancy %#x", ErrCollision, s, sq, idx, uint64(occ))
		}
		filled[idx], expected[idx] = true, want
		if e.Table[idx] != want {
			return fmt.Errorf("%w: %s on %s, occupancy %#x", ErrMismatch, s, sq, uint64(occ))
		}
		return nil
	})
}
