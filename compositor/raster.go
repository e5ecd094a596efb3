package compositor

// Bulk raster helpers shared by the sprite and mask renderers. They operate
// on whole Pix rows rather than going through image.Image's At and Set.

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// scaleNearest resamples src to w×h with nearest-neighbour sampling, keeping
// hard pixel-art edges.
func scaleNearest(src *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Empty() || w <= 0 || h <= 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// scaleAlphaNearest resamples src over the whole of dst with
// nearest-neighbour sampling.
func scaleAlphaNearest(dst *image.Alpha, src *image.Alpha) {
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// extract builds an 8-bit mask from img, one value per pixel, computed by f
// from the pixel's four premultiplied RGBA bytes.
func extract(img *image.RGBA, f func(px []uint8) uint8) *image.Alpha {
	b := img.Bounds()
	m := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):img.PixOffset(b.Max.X, b.Min.Y+y)]
		dst := m.Pix[y*m.Stride : y*m.Stride+b.Dx()]
		for x := range dst {
			dst[x] = f(src[4*x : 4*x+4])
		}
	}
	return m
}

var colorBlack = color.RGBA{0, 0, 0, 0xFF}

// presence is 0xFF for any pixel with non-zero alpha.
func presence(px []uint8) uint8 {
	if px[3] != 0 {
		return 0xFF
	}
	return 0
}

func alpha(px []uint8) uint8 {
	return px[3]
}

// straight returns the non-premultiplied value of channel c.
func straight(c int) func(px []uint8) uint8 {
	return func(px []uint8) uint8 {
		a := uint32(px[3])
		if a == 0 {
			return 0
		}
		if a == 0xFF {
			return px[c]
		}
		v := uint32(px[c]) * 0xFF / a
		if v > 0xFF {
			v = 0xFF
		}
		return uint8(v)
	}
}

// silhouette recolours every pixel with non-zero alpha to the opaque colour
// c, and every other pixel to transparent.
func silhouette(img *image.RGBA, c color.RGBA) *image.RGBA {
	c.A = 0xFF
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), &image.Uniform{c}, image.Point{}, extract(img, presence), image.Point{}, draw.Src)
	return dst
}

// paste blends src into dst with its origin at the passed point, weighting
// each pixel by the mask value at the same src position:
//
//	dst = src*m + dst*(1-m)
//
// on every premultiplied channel. This is a plain "paste through mask"; unlike
// draw.Src it keeps dst where the mask is zero, and unlike draw.Over it
// ignores src's own alpha when weighting. mask must cover src's bounds.
func paste(dst *image.RGBA, at image.Point, src *image.RGBA, mask *image.Alpha) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - at.Y
		for x := r.Min.X; x < r.Max.X; x++ {
			sx := x - at.X
			m := uint32(mask.Pix[mask.PixOffset(mask.Rect.Min.X+sx, mask.Rect.Min.Y+sy)])
			if m == 0 {
				continue
			}
			di := dst.PixOffset(x, y)
			si := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy)
			d, s := dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4]
			if m == 0xFF {
				copy(d, s)
				continue
			}
			for i := range d {
				d[i] = uint8((uint32(s[i])*m + uint32(d[i])*(0xFF-m) + 0x7F) / 0xFF)
			}
		}
	}
}

// pasteColor is paste with a uniform opaque colour covering the whole of dst.
// mask must have dst's bounds.
func pasteColor(dst *image.RGBA, c color.RGBA, mask *image.Alpha) {
	c.A = 0xFF
	src := image.NewRGBA(dst.Bounds())
	draw.Draw(src, src.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	paste(dst, dst.Bounds().Min, src, mask)
}

// blank reports whether every pixel of img is fully transparent.
func blank(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0 {
				return false
			}
		}
	}
	return true
}

// tileTexture repeats tex across a w×h raster, starting at the origin and
// stepping by the texture's own size.
func tileTexture(tex *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	ts := tex.Bounds().Size()
	if ts.X <= 0 || ts.Y <= 0 {
		return dst
	}
	for y := 0; y < h; y += ts.Y {
		for x := 0; x < w; x += ts.X {
			draw.Draw(dst, image.Rect(x, y, x+ts.X, y+ts.Y), tex, tex.Bounds().Min, draw.Src)
		}
	}
	return dst
}
