package compositor

import (
	"image"
	"math"

	"github.com/disintegration/gift"
)

// boxBlur applies a box blur of the passed radius to img, passes times. Two
// passes are a cheap approximation of a gaussian blur.
//
// The radius may be fractional: the box covers 2*radius+1 pixels, the two
// outermost taps weighted by the fractional part. A radius of zero or less
// leaves the image unchanged.
func boxBlur(img *image.RGBA, radius float64, passes int) *image.RGBA {
	if radius <= 0 {
		dst := image.NewRGBA(img.Bounds())
		copy(dst.Pix, img.Pix)
		return dst
	}
	kernel := boxKernel(radius)
	filters := make([]gift.Filter, 0, passes)
	for i := 0; i < passes; i++ {
		filters = append(filters, gift.Convolution(kernel, false, true, false, 0))
	}
	g := gift.New(filters...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// boxWeights returns the one-dimensional box of the passed radius,
// normalized to sum to one.
func boxWeights(radius float64) []float64 {
	whole := math.Floor(radius)
	frac := radius - whole
	half := int(whole)
	if frac > 0 {
		half++
	}
	w := make([]float64, 2*half+1)
	for i := range w {
		w[i] = 1
	}
	if frac > 0 {
		w[0], w[len(w)-1] = frac, frac
	}
	for i := range w {
		w[i] /= 2*radius + 1
	}
	return w
}

// boxKernel is the square outer product of boxWeights, in the row-major form
// gift.Convolution expects.
func boxKernel(radius float64) []float32 {
	w := boxWeights(radius)
	k := make([]float32, 0, len(w)*len(w))
	for _, wy := range w {
		for _, wx := range w {
			k = append(k, float32(wy*wx))
		}
	}
	return k
}
