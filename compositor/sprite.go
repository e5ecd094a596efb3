package compositor

import (
	"image"
	"image/color"
	"image/draw"
)

// Style carries the per-render shadow and outline settings.
type Style struct {
	Shadow      bool
	ShadowColor color.RGBA
	// ShadowStrength multiplies the blurred shadow's alpha; the result is
	// clamped to 255.
	ShadowStrength float64

	Outline      bool
	OutlineColor color.RGBA
	// OutlineThickness is the stamping offset in tile pixels. Zero picks
	// upscale/5+1.
	OutlineThickness int
}

// DefaultStyle is a black shadow at full strength and a black outline, both
// enabled.
var DefaultStyle = Style{
	Shadow:         true,
	ShadowColor:    color.RGBA{0, 0, 0, 0xFF},
	ShadowStrength: 1,
	Outline:        true,
	OutlineColor:   color.RGBA{0, 0, 0, 0xFF},
}

// Sprite is a single region extracted from a sheet.
type Sprite struct {
	Image *image.RGBA
}

// Size returns the sprite's pixel dimensions.
func (s Sprite) Size() image.Point {
	return s.Image.Bounds().Size()
}

// Empty reports whether the sprite has no visible pixels.
func (s Sprite) Empty() bool {
	return blank(s.Image)
}

// Render upscales the sprite by the passed integer factor (which must be at
// least 1) and draws it onto a transparent tile with a one-cell border,
// below it the shadow and then the outline if enabled.
func (s Sprite) Render(upscale int, st Style) *image.RGBA {
	size := s.Size()
	tile := image.NewRGBA(image.Rectangle{Max: TileSize(size, upscale)})
	inner := image.Rect(upscale, upscale, upscale+size.X*upscale, upscale+size.Y*upscale)

	if st.Shadow {
		s.drawShadow(tile, inner, upscale, st)
	}
	if st.Outline {
		s.drawOutline(tile, inner, upscale, st)
	}

	sized := scaleNearest(s.Image, inner.Dx(), inner.Dy())
	paste(tile, inner.Min, sized, extract(sized, alpha))
	return tile
}

func (s Sprite) drawShadow(tile *image.RGBA, inner image.Rectangle, upscale int, st Style) {
	sil := scaleNearest(silhouette(s.Image, st.ShadowColor), inner.Dx(), inner.Dy())
	buf := image.NewRGBA(tile.Bounds())
	draw.Draw(buf, inner, sil, image.Point{}, draw.Src)

	blurred := boxBlur(buf, float64(upscale)/2, 2)
	strength := extract(blurred, func(px []uint8) uint8 {
		v := int(float64(px[3]) * st.ShadowStrength)
		switch {
		case v > 0xFF:
			return 0xFF
		case v < 0:
			return 0
		}
		return uint8(v)
	})

	pasteColor(tile, st.ShadowColor, strength)
}

// drawOutline stamps the silhouette at the four diagonal offsets around the
// sprite's position. The result is a ring, with thin diagonal artifacts at
// sharp corners; it is never blurred.
func (s Sprite) drawOutline(tile *image.RGBA, inner image.Rectangle, upscale int, st Style) {
	sil := scaleNearest(silhouette(s.Image, st.OutlineColor), inner.Dx(), inner.Dy())
	m := extract(sil, alpha)
	off := OutlineOffset(upscale, st.OutlineThickness)
	for _, dx := range []int{-off, off} {
		for _, dy := range []int{-off, off} {
			paste(tile, inner.Min.Add(image.Pt(dx, dy)), sil, m)
		}
	}
}

// OutlineOffset returns the diagonal stamping offset used for outlines.
func OutlineOffset(upscale, thickness int) int {
	if thickness != 0 {
		return thickness
	}
	return upscale/5 + 1
}
