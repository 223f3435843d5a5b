package main

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/duyanhHSGS/Carolyna/internal/attack"
	"github.com/duyanhHSGS/Carolyna/internal/board"
	"github.com/duyanhHSGS/Carolyna/internal/magic"
)

var (
	tablesOnce   sync.Once
	sharedTables *attack.Tables
	tablesErr    error
)

func testTables(t *testing.T) *attack.Tables {
	t.Helper()
	tablesOnce.Do(func() {
		var mt *magic.Tables
		mt, tablesErr = magic.Build(context.Background())
		if tablesErr != nil {
			return
		}
		sharedTables = attack.New(mt)
		sharedTables.Init()
	})
	if tablesErr != nil {
		t.Fatalf("build tables: %v", tablesErr)
	}
	return sharedTables
}

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		in      string
		want    board.PieceType
		wantErr bool
	}{
		{"n", board.Knight, false},
		{"Q", board.Queen, false},
		{"rook", board.Rook, false},
		{" King ", board.King, false},
		{"x", board.NoPieceType, true},
		{"", board.NoPieceType, true},
	}
	for _, tc := range tests {
		got, err := parsePieceType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parsePieceType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePieceType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]board.Color{"w": board.White, "White": board.White, "b": board.Black, "BLACK": board.Black} {
		got, err := parseColor(in)
		if err != nil || got != want {
			t.Errorf("parseColor(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseColor("red"); err == nil {
		t.Error("parseColor(red) should fail")
	}
}

func TestAttackSet(t *testing.T) {
	tables := testTables(t)
	occupied := board.SquareBB(board.D6)

	tests := []struct {
		pt    board.PieceType
		c     board.Color
		sq    board.Square
		count int
	}{
		{board.Pawn, board.White, board.E4, 2},
		{board.Knight, board.White, board.A1, 2},
		{board.King, board.Black, board.E8, 5},
		{board.Rook, board.White, board.D4, 12}, // d5 d6 then blocked
		{board.Bishop, board.White, board.D4, 13},
		{board.Queen, board.Black, board.D4, 25},
	}
	for _, tc := range tests {
		got := attackSet(tables, tc.pt, tc.c, tc.sq, occupied)
		if got.PopCount() != tc.count {
			t.Errorf("%v %v on %s attacks %v, want %d squares", tc.c, tc.pt, tc.sq, got.Names(), tc.count)
		}
	}
}

func TestAttackers(t *testing.T) {
	tables := testTables(t)

	p, err := board.ParsePlacement("8/8/8/8/3P1P2/8/8/8 w")
	if err != nil {
		t.Fatal(err)
	}
	if !isAttacked(tables, p, board.E5, board.White) {
		t.Error("e5 should be attacked by White")
	}
	if isAttacked(tables, p, board.E5, board.Black) {
		t.Error("e5 should not be attacked by Black")
	}

	p, err = board.ParsePlacement("4k3/8/8/8/1q6/5n2/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	got := attackers(tables, p, board.E1, board.Black)
	want := []string{"knight", "bishop/queen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("attackers of e1 = %v, want %v", got, want)
	}
}
