// Package render draws attack sets as board diagrams, as SVG for documents and
// as PNG for anything that cannot display vector images.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"sync"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/duyanhHSGS/Carolyna/internal/board"
)

const defaultSquareSize = 48

// Board colors
const (
	lightColor    = "#f0d9b5"
	darkColor     = "#b58863"
	attackColor   = "#d9534f"
	originColor   = "#2e86de"
	occupiedColor = "#333333"
	labelColor    = "#555555"
	background    = "#ffffff"
)

// Diagram describes one board picture: the square a piece stands on, the
// squares it attacks and the occupancy it was resolved against.
type Diagram struct {
	Title      string
	Origin     board.Square // NoSquare for none
	Attacks    board.Bitboard
	Occupied   board.Bitboard
	SquareSize int // pixels, defaults to 48
}

// layout returns the square size, the margin kept for coordinates and the
// total edge length of the picture.
func (d *Diagram) layout() (sq, margin, total int) {
	sq = d.SquareSize
	if sq <= 0 {
		sq = defaultSquareSize
	}
	margin = sq / 2
	return sq, margin, 8*sq + 2*margin
}

// squareOrigin returns the top-left pixel of a square, rank 8 on top.
func (d *Diagram) squareOrigin(s board.Square) (x, y int) {
	sq, margin, _ := d.layout()
	return margin + s.File()*sq, margin + (7-s.Rank())*sq
}

// WriteSVG writes the diagram with file and rank labels as an SVG document.
func WriteSVG(w io.Writer, d Diagram) error {
	ew := &errWriter{w: w}
	writeSVG(ew, &d, true)
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeSVG(w io.Writer, d *Diagram, labels bool) {
	sq, margin, total := d.layout()

	canvas := svg.New(w)
	canvas.Startview(total, total, 0, 0, total, total)
	if labels && d.Title != "" {
		canvas.Title(d.Title)
	}
	canvas.Rect(0, 0, total, total, fill(background))

	for s := board.A1; s <= board.H8; s++ {
		x, y := d.squareOrigin(s)
		c := darkColor
		if (s.File()+s.Rank())%2 == 1 {
			c = lightColor
		}
		canvas.Rect(x, y, sq, sq, fill(c))
	}

	d.Attacks.ForEach(func(s board.Square) {
		x, y := d.squareOrigin(s)
		canvas.Rect(x, y, sq, sq, fill(attackColor), `fill-opacity="0.6"`)
	})
	if d.Origin.IsValid() {
		x, y := d.squareOrigin(d.Origin)
		canvas.Rect(x, y, sq, sq, fill(originColor), `fill-opacity="0.7"`)
	}
	d.Occupied.ForEach(func(s board.Square) {
		x, y := d.squareOrigin(s)
		canvas.Circle(x+sq/2, y+sq/2, sq/6, fill(occupiedColor))
	})

	if labels {
		fontSize := strconv.Itoa(margin * 2 / 3)
		textStyle := []string{fill(labelColor), `font-family="sans-serif"`, `font-size="` + fontSize + `"`, `text-anchor="middle"`}
		for f := 0; f < 8; f++ {
			canvas.Text(margin+f*sq+sq/2, total-margin/4, string(rune('a'+f)), textStyle...)
		}
		for r := 0; r < 8; r++ {
			canvas.Text(margin/2, margin+(7-r)*sq+sq/2+margin/4, string(rune('1'+r)), textStyle...)
		}
	}

	canvas.End()
}

func fill(c string) string {
	return `fill="` + c + `"`
}

// RenderPNG rasterizes the diagram. The board is drawn from the label-free SVG
// and the coordinates are added with the Go regular font.
func RenderPNG(d Diagram) (*image.RGBA, error) {
	var buf bytes.Buffer
	writeSVG(&buf, &d, false)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}

	_, _, total := d.layout()
	icon.SetTarget(0, 0, float64(total), float64(total))

	rgba := image.NewRGBA(image.Rect(0, 0, total, total))
	scanner := rasterx.NewScannerGV(total, total, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(total, total, scanner)
	icon.Draw(raster, 1.0)

	if err := drawLabels(rgba, &d); err != nil {
		return nil, err
	}
	return rgba, nil
}

// WritePNG encodes the rasterized diagram as PNG.
func WritePNG(w io.Writer, d Diagram) error {
	img, err := RenderPNG(d)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func drawLabels(dst *image.RGBA, d *Diagram) error {
	sq, margin, total := d.layout()

	ttf, err := regularFont()
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    float64(margin) * 2 / 3,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0x55, 0x55, 0x55, 0xff}),
		Face: face,
	}
	centered := func(s string, x, y int) {
		adv := drawer.MeasureString(s)
		drawer.Dot = fixed.Point26_6{X: fixed.I(x) - adv/2, Y: fixed.I(y)}
		drawer.DrawString(s)
	}

	for f := 0; f < 8; f++ {
		centered(string(rune('a'+f)), margin+f*sq+sq/2, total-margin/4)
	}
	for r := 0; r < 8; r++ {
		centered(string(rune('1'+r)), margin/2, margin+(7-r)*sq+sq/2+margin/4)
	}
	if d.Title != "" {
		drawer.Dot = fixed.P(margin, margin*3/4)
		drawer.DrawString(d.Title)
	}
	return nil
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
