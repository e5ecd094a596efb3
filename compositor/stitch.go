package compositor

import (
	"image"
	"image/draw"

	"badc0de.net/pkg/go-spriterender"
)

// Stitch arranges tiles row-major into a grid of the passed number of
// columns. The grid cell is the size of the first tile; the result is
// columns cells wide and as many rows tall as needed.
//
// Tiles are expected to share one size. A larger tile is still drawn whole at
// its cell's origin, spilling into the following cell and clipped at the
// canvas edge; entity rows rely on this for their double-width attack frame.
func Stitch(columns int, tiles []*image.RGBA) (*image.RGBA, error) {
	if columns <= 0 {
		return nil, spriterender.Geometryf("stitch: %d columns", columns)
	}
	if len(tiles) == 0 {
		return nil, spriterender.Geometryf("stitch: no tiles")
	}

	cell := tiles[0].Bounds().Size()
	rows := (len(tiles)-1)/columns + 1
	dst := image.NewRGBA(image.Rect(0, 0, columns*cell.X, rows*cell.Y))

	for i, t := range tiles {
		at := image.Pt((i%columns)*cell.X, (i/columns)*cell.Y)
		tb := t.Bounds()
		draw.Draw(dst, tb.Sub(tb.Min).Add(at), t, tb.Min, draw.Src)
	}
	return dst, nil
}
