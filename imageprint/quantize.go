package imageprint

import (
	"image"

	"github.com/andybons/gogif"
)

// Paletted reduces i to at most n colours, as Sixel output needs.
func Paletted(i image.Image, n int) *image.Paletted {
	p := image.NewPaletted(i.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: n}
	quantizer.Quantize(p, i.Bounds(), i, image.Point{})
	return p
}
