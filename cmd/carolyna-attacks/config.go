package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/duyanhHSGS/Carolyna/internal/board"
	"github.com/duyanhHSGS/Carolyna/internal/magic"
)

// Environment variables read when the matching flag is not set.
const (
	envStoreDir   = "CAROLYNA_MAGIC_DIR"
	envCPUProfile = "CPUPROFILE"
)

type config struct {
	storeDir string
	memory   bool
	rebuild  bool

	fen      string
	square   string
	piece    string
	color    string
	attacked string

	svgPath    string
	pngPath    string
	squareSize int

	verbosity  int
	cpuprofile string
}

func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("carolyna-attacks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.storeDir, "store", "", "magic table store directory (env "+envStoreDir+")")
	fs.BoolVar(&cfg.memory, "memory", false, "keep magic tables in memory only")
	fs.BoolVar(&cfg.rebuild, "rebuild", false, "rebuild and store the magic tables")
	fs.StringVar(&cfg.fen, "fen", board.StartFEN, "position to query")
	fs.StringVar(&cfg.square, "square", "", "show the attack set of the piece on this square")
	fs.StringVar(&cfg.piece, "piece", "", "piece to place on -square (p, n, b, r, q, k); defaults to the piece found there")
	fs.StringVar(&cfg.color, "color", "", "color of -piece (white or black)")
	fs.StringVar(&cfg.attacked, "attacked", "", "report whether this square is attacked by each side")
	fs.StringVar(&cfg.svgPath, "svg", "", "write the attack diagram as SVG")
	fs.StringVar(&cfg.pngPath, "png", "", "write the attack diagram as PNG")
	fs.IntVar(&cfg.squareSize, "size", 48, "diagram square size in pixels")
	fs.IntVar(&cfg.verbosity, "v", 0, "log verbosity")
	fs.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write cpu profile to file (env "+envCPUProfile+")")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.New("unexpected arguments: use -square or -attacked")
	}

	if cfg.cpuprofile == "" {
		cfg.cpuprofile = os.Getenv(envCPUProfile)
	}

	if cfg.memory {
		cfg.storeDir = ""
		return cfg, nil
	}
	if cfg.storeDir == "" {
		cfg.storeDir = os.Getenv(envStoreDir)
	}
	if cfg.storeDir == "" {
		dir, err := magic.StoreDir()
		if err != nil {
			return nil, err
		}
		cfg.storeDir = dir
	}

	return cfg, nil
}
