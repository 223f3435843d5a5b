// Package magic provides the precomputed sliding-piece attack tables that the
// attack package resolves rook and bishop attacks from.
//
// Each square holds a relevancy mask, a multiplier and a shift that together
// hash any occupancy into a slot of that square's attack table. The tables are
// built from ray casting, checked once by Validate and can be persisted with a
// Store so later processes skip the build.
package magic

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/duyanhHSGS/Carolyna/internal/board"
)

// Slider identifies a sliding piece movement.
type Slider uint8

const (
	Bishop Slider = iota
	Rook
)

func (s Slider) String() string {
	if s == Rook {
		return "rook"
	}
	return "bishop"
}

// Sliders lists both sliding movements.
var Sliders = [2]Slider{Bishop, Rook}

// Entry is the magic data for one square and one slider.
type Entry struct {
	Mask  board.Bitboard   // relevant occupancy, edges excluded
	Magic uint64           // multiplier
	Shift uint8            // 64 minus the index width
	Table []board.Bitboard // attack sets indexed by the hashed occupancy
}

// Index hashes an occupancy into the entry's table.
func (e *Entry) Index(occupied board.Bitboard) uint64 {
	return (uint64(occupied&e.Mask) * e.Magic) >> e.Shift
}

// Attacks returns the attack set for the given full-board occupancy.
// There is no bounds or collision check; Validate covers both up front.
func (e *Entry) Attacks(occupied board.Bitboard) board.Bitboard {
	return e.Table[(uint64(occupied&e.Mask)*e.Magic)>>e.Shift]
}

// Tables holds the entries for every square of both sliders.
type Tables struct {
	Bishop [64]Entry
	Rook   [64]Entry
}

// Entries returns the 64 entries for a slider.
func (t *Tables) Entries(s Slider) *[64]Entry {
	if s == Rook {
		return &t.Rook
	}
	return &t.Bishop
}

// Bytes returns the memory held by the attack tables.
func (t *Tables) Bytes() uint64 {
	var n uint64
	for _, s := range Sliders {
		for i := range t.Entries(s) {
			n += uint64(len(t.Entries(s)[i].Table)) * 8
		}
	}
	return n
}

// Build computes the attack tables for both sliders. Squares are filled
// concurrently; the returned Tables is read-only from then on.
func Build(ctx context.Context) (*Tables, error) {
	t := &Tables{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, s := range Sliders {
		entries := t.Entries(s)
		for sq := board.A1; sq <= board.H8; sq++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				entries[sq] = newEntry(s, sq)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build magic tables: %w", err)
	}

	return t, nil
}

func newEntry(s Slider, sq board.Square) Entry {
	e := Entry{
		Mask:  RelevantMask(s, sq),
		Magic: bishopMultipliers[sq],
		Shift: bishopShift,
	}
	if s == Rook {
		e.Magic = rookMultipliers[sq]
		e.Shift = rookShift
	}
	e.Table = make([]board.Bitboard, 1<<(64-e.Shift))

	_ = forEachSubset(e.Mask, func(occ board.Bitboard) error {
		e.Table[e.Index(occ)] = SlowAttacks(s, sq, occ)
		return nil
	})
	return e
}
