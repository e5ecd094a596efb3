// Package ttesting contains helpers shared by the tests of the renderer
// packages.
package ttesting

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualPoint(t *testing.T, name string, got, want image.Point) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertEqualRGBA(t *testing.T, name string, got, want color.RGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertSameImage checks that both rasters have the same size and identical
// pixel bytes. Only the first differing pixel is reported.
func AssertSameImage(t *testing.T, name string, got, want *image.RGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got.Bounds().Size() != want.Bounds().Size() {
			t.Fatalf("size %v; want %v", got.Bounds().Size(), want.Bounds().Size())
		}
		gb, wb := got.Bounds(), want.Bounds()
		for y := 0; y < gb.Dy(); y++ {
			g := got.Pix[got.PixOffset(gb.Min.X, gb.Min.Y+y):got.PixOffset(gb.Max.X, gb.Min.Y+y)]
			w := want.Pix[want.PixOffset(wb.Min.X, wb.Min.Y+y):want.PixOffset(wb.Max.X, wb.Min.Y+y)]
			if !bytes.Equal(g, w) {
				for x := 0; x < gb.Dx(); x++ {
					if gc, wc := got.RGBAAt(gb.Min.X+x, gb.Min.Y+y), want.RGBAAt(wb.Min.X+x, wb.Min.Y+y); gc != wc {
						t.Fatalf("pixel (%d,%d) = %v; want %v", x, y, gc, wc)
					}
				}
			}
		}
	})
}

// AssertTransparentOutside checks that every pixel outside r has zero alpha.
func AssertTransparentOutside(t *testing.T, name string, img *image.RGBA, r image.Rectangle) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if image.Pt(x, y).In(r) {
					continue
				}
				if a := img.RGBAAt(x, y).A; a != 0 {
					t.Fatalf("pixel (%d,%d) has alpha %d; want 0 outside %v", x, y, a, r)
				}
			}
		}
	})
}
