package modes

import (
	"image"
	"image/color"
	"image/draw"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
	"badc0de.net/pkg/go-spriterender/sheet"
)

// Params are the inputs shared by every mode. The render call never modifies
// them.
type Params struct {
	Sheet *sheet.Sheet

	// Index is the first cell, in decimal or 0x-prefixed hex.
	Index string
	// Length is mode-specific: cells for Image and Animation, pose rows for
	// Entity, pose slots (1-3) for Overview. Zero means "to the end of the
	// sheet" (three slots for Overview).
	Length int

	// Width and Height are the cell size in sheet pixels.
	Width, Height int
	Upscale       int

	Style compositor.Style

	HasBG   bool
	BGColor color.RGBA

	HasMask   bool
	Clothing  *image.RGBA
	Accessory *image.RGBA
}

// Validate checks the parameters that every mode depends on.
func (p Params) Validate() error {
	_, err := p.validate()
	return err
}

func (p Params) validate() (string, error) {
	switch {
	case p.Sheet == nil:
		return "sheet", spriterender.Geometryf("no sheet loaded")
	case p.Width <= 0:
		return "width", spriterender.Geometryf("width %d must be positive", p.Width)
	case p.Height <= 0:
		return "height", spriterender.Geometryf("height %d must be positive", p.Height)
	case p.Sheet.Columns(p.Width) == 0 || p.Sheet.Rows(p.Height) == 0:
		return "width", spriterender.Geometryf("sheet %v holds no %dx%d cell", p.Sheet.Size(), p.Width, p.Height)
	case p.Upscale <= 0:
		return "upscale", spriterender.Geometryf("upscale %d must be positive", p.Upscale)
	case p.Style.ShadowStrength < 0:
		return "shadow_strength", spriterender.Geometryf("shadow strength %g must not be negative", p.Style.ShadowStrength)
	case p.Style.OutlineThickness < 0:
		return "outline_thickness", spriterender.Geometryf("outline thickness %d must not be negative", p.Style.OutlineThickness)
	}
	return "", nil
}

// cell renders the sheet cell at the passed index into a finished tile.
func (p Params) cell(index int) (*image.RGBA, error) {
	spr, msk, err := p.Sheet.GetSprite(index, p.Width, p.Height, 0)
	if err != nil {
		return nil, err
	}
	return p.render(spr, msk), nil
}

func (p Params) render(spr, msk *image.RGBA) *image.RGBA {
	return compositor.Render(
		compositor.Sprite{Image: spr},
		compositor.Mask{Image: msk, Clothing: p.Clothing, Accessory: p.Accessory},
		p.Upscale, p.HasMask, p.Style)
}

// background composites img over the background colour, if one is set.
func (p Params) background(img *image.RGBA) *image.RGBA {
	if !p.HasBG {
		return img
	}
	bg := p.BGColor
	bg.A = 0xFF
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}
