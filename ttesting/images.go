package ttesting

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	Red   = color.RGBA{0xFF, 0, 0, 0xFF}
	Green = color.RGBA{0, 0xFF, 0, 0xFF}
	Blue  = color.RGBA{0, 0, 0xFF, 0xFF}
	Black = color.RGBA{0, 0, 0, 0xFF}
	White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// Solid returns a w×h raster filled with c.
func Solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img, img.Bounds(), c)
	return img
}

// Fill paints r of img with c, replacing what was there.
func Fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// Grid returns a sheet-like raster of cols×rows cells of w×h pixels. Cell i
// (row-major) is painted with colors[i]; a zero colour leaves the cell
// transparent.
func Grid(cols, rows, w, h int, colors ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*w, rows*h))
	for i, c := range colors {
		if c.A == 0 {
			continue
		}
		x, y := (i%cols)*w, (i/cols)*h
		Fill(img, image.Rect(x, y, x+w, y+h), c)
	}
	return img
}

// Opaque counts pixels of img with non-zero alpha inside r.
func Opaque(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}
