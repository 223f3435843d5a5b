// Command carolyna-attacks loads the magic attack tables, building and storing
// them on first use, and answers attack queries about a position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/duyanhHSGS/Carolyna/internal/attack"
	"github.com/duyanhHSGS/Carolyna/internal/board"
	"github.com/duyanhHSGS/Carolyna/internal/magic"
	"github.com/duyanhHSGS/Carolyna/internal/render"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	stdr.SetVerbosity(cfg.verbosity)
	log := stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))

	// Start CPU profiling if requested (via flag or environment variable)
	if cfg.cpuprofile != "" {
		f, err := os.Create(cfg.cpuprofile)
		if err != nil {
			stdlog.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			stdlog.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Info("CPU profiling enabled", "path", cfg.cpuprofile)
	}

	if err := run(context.Background(), cfg, os.Stdout, log); err != nil {
		log.Error(err, "query failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, out io.Writer, log logr.Logger) error {
	log.V(1).Info("bit scans", "cpu", board.DetectCPU().String(), "scanner", board.ActiveScanner().Name())

	tables, err := loadTables(ctx, cfg, log)
	if err != nil {
		return err
	}

	p, err := board.ParsePlacement(cfg.fen)
	if err != nil {
		return err
	}

	switch {
	case cfg.attacked != "":
		return reportAttacked(out, tables, p, cfg.attacked)
	case cfg.square != "":
		return reportAttackSet(out, tables, p, cfg)
	default:
		fmt.Fprint(out, p)
		return nil
	}
}

// loadTables opens the store, loads or builds the magic tables and returns
// initialized attack tables ready to be shared.
func loadTables(ctx context.Context, cfg *config, log logr.Logger) (*attack.Tables, error) {
	if cfg.storeDir != "" {
		if err := os.MkdirAll(cfg.storeDir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	store, err := magic.OpenStore(cfg.storeDir, log.WithName("magic"))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	var mt *magic.Tables
	if cfg.rebuild {
		mt, err = magic.Rebuild(ctx, store, log)
	} else {
		mt, err = magic.LoadOrBuild(ctx, store, log)
	}
	if err != nil {
		return nil, err
	}

	tables := attack.New(mt)
	tables.Init()
	return tables, nil
}

func reportAttacked(out io.Writer, tables *attack.Tables, p *board.Placement, square string) error {
	sq, err := board.ParseSquare(square)
	if err != nil {
		return err
	}
	for _, by := range []board.Color{board.White, board.Black} {
		kinds := attackers(tables, p, sq, by)
		if len(kinds) == 0 {
			fmt.Fprintf(out, "%s attacked by %s: no\n", sq, by)
			continue
		}
		fmt.Fprintf(out, "%s attacked by %s: yes (%s)\n", sq, by, strings.Join(kinds, ", "))
	}
	return nil
}

func reportAttackSet(out io.Writer, tables *attack.Tables, p *board.Placement, cfg *config) error {
	sq, err := board.ParseSquare(cfg.square)
	if err != nil {
		return err
	}

	piece := p.PieceAt(sq)
	pt, c := piece.Type(), piece.Color()
	if cfg.piece != "" {
		if pt, err = parsePieceType(cfg.piece); err != nil {
			return err
		}
		if c == board.NoColor {
			c = p.SideToMove
		}
	}
	if cfg.color != "" {
		if c, err = parseColor(cfg.color); err != nil {
			return err
		}
	}
	if pt == board.NoPieceType {
		return fmt.Errorf("no piece on %s: use -piece", sq)
	}

	occupied := p.Occupied()
	set := attackSet(tables, pt, c, sq, occupied)

	fmt.Fprintf(out, "%s %s on %s attacks %d squares: %s\n", c, pt, sq, set.PopCount(), strings.Join(set.Names(), " "))
	fmt.Fprint(out, set)

	d := render.Diagram{
		Title:      fmt.Sprintf("%s %s on %s", c, pt, sq),
		Origin:     sq,
		Attacks:    set,
		Occupied:   occupied,
		SquareSize: cfg.squareSize,
	}
	if cfg.svgPath != "" {
		if err := writeFile(cfg.svgPath, func(w io.Writer) error { return render.WriteSVG(w, d) }); err != nil {
			return err
		}
	}
	if cfg.pngPath != "" {
		if err := writeFile(cfg.pngPath, func(w io.Writer) error { return render.WritePNG(w, d) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
