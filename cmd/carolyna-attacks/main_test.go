package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

func TestParseConfig(t *testing.T) {
	t.Run("env fallbacks", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(envStoreDir, dir)
		t.Setenv(envCPUProfile, "cpu.out")

		cfg, err := parseConfig(nil, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.storeDir != dir {
			t.Errorf("storeDir = %q, want %q", cfg.storeDir, dir)
		}
		if cfg.cpuprofile != "cpu.out" {
			t.Errorf("cpuprofile = %q, want cpu.out", cfg.cpuprofile)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		t.Setenv(envStoreDir, "/from/env")
		cfg, err := parseConfig([]string{"-store", "/from/flag", "-square", "e4"}, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.storeDir != "/from/flag" || cfg.square != "e4" {
			t.Errorf("got store %q square %q", cfg.storeDir, cfg.square)
		}
	})

	t.Run("memory", func(t *testing.T) {
		t.Setenv(envStoreDir, "/from/env")
		cfg, err := parseConfig([]string{"-memory"}, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.storeDir != "" {
			t.Errorf("storeDir = %q, want in-memory", cfg.storeDir)
		}
	})

	t.Run("stray argument", func(t *testing.T) {
		if _, err := parseConfig([]string{"-memory", "e4"}, io.Discard); err == nil {
			t.Error("expected an error for a positional argument")
		}
	})
}

func runQuery(t *testing.T, cfg *config) string {
	t.Helper()
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out, logr.Discard()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRunAttacked(t *testing.T) {
	out := runQuery(t, &config{fen: "4r3/8/8/8/8/8/8/4K3 w", attacked: "e1"})

	for _, want := range []string{
		"e1 attacked by White: no",
		"e1 attacked by Black: yes (rook/queen)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunAttackSet(t *testing.T) {
	dir := t.TempDir()
	cfg := &config{
		storeDir:   filepath.Join(dir, "store"),
		fen:        "8/8/8/8/8/8/8/R7 w",
		square:     "a1",
		svgPath:    filepath.Join(dir, "a1.svg"),
		pngPath:    filepath.Join(dir, "a1.png"),
		squareSize: 24,
	}

	out := runQuery(t, cfg)
	if !strings.Contains(out, "White Rook on a1 attacks 14 squares") {
		t.Errorf("unexpected output:\n%s", out)
	}
	for _, path := range []string{cfg.svgPath, cfg.pngPath} {
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written: %v", path, err)
		}
	}

	// Second run loads the stored tables.
	cfg.svgPath, cfg.pngPath = "", ""
	cfg.piece, cfg.color = "n", "black"
	out = runQuery(t, cfg)
	if !strings.Contains(out, "Black Knight on a1 attacks 2 squares: c2 b3") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunEmptySquare(t *testing.T) {
	err := run(context.Background(), &config{fen: "8/8/8/8/8/8/8/8 w", square: "e4"}, io.Discard, logr.Discard())
	if err == nil {
		t.Fatal("expected an error for an empty square without -piece")
	}
}
