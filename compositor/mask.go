package compositor

import (
	"image"
	"image/draw"
)

// maskScale is the fixed intermediate resolution at which textures are
// stamped, regardless of the final upscale. Textures tile at their native
// pixel size against this grid.
const maskScale = 5

// Mask is the recolour-mask region matching a Sprite. Its red channel selects
// the clothing texture and its green channel the accessory texture; the
// channel intensity is the stencil strength. Alpha marks presence.
//
// Textures are style inputs supplied per render, and should be seamless. A
// nil texture leaves its channel unstamped.
type Mask struct {
	Image     *image.RGBA
	Clothing  *image.RGBA
	Accessory *image.RGBA
}

// Empty reports whether the mask region has no visible pixels.
func (m Mask) Empty() bool {
	return blank(m.Image)
}

// Render produces a texture overlay with the same border convention and size
// as a Sprite tile rendered at the passed upscale.
func (m Mask) Render(upscale int) *image.RGBA {
	size := m.Image.Bounds().Size()
	w, h := size.X*maskScale, size.Y*maskScale

	base := scaleNearest(silhouette(m.Image, colorBlack), w, h)
	m.stamp(base, m.Clothing, 0)
	m.stamp(base, m.Accessory, 1)

	canvas := image.NewRGBA(image.Rectangle{Max: TileSize(size, maskScale)})
	draw.Draw(canvas, base.Bounds().Add(image.Pt(maskScale, maskScale)), base, image.Point{}, draw.Src)

	final := TileSize(size, upscale)
	if final == canvas.Bounds().Size() {
		return canvas
	}
	return scaleNearest(canvas, final.X, final.Y)
}

// stamp pastes the tiled texture onto base, using channel c of the mask
// (upscaled to base's size) as the paste mask.
func (m Mask) stamp(base *image.RGBA, tex *image.RGBA, c int) {
	if tex == nil {
		return
	}
	b := base.Bounds()
	fill := tileTexture(tex, b.Dx(), b.Dy())

	ch := extract(m.Image, straight(c))
	sized := image.NewAlpha(b)
	if !ch.Bounds().Empty() {
		scaleAlphaNearest(sized, ch)
	}
	paste(base, b.Min, fill, sized)
}
