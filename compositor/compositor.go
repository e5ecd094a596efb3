// Package compositor turns extracted sprite regions into finished tiles.
//
// Every tile follows the same border convention: a sprite of w×h pixels
// rendered at an integer scale produces a tile of (w+2)*scale × (h+2)*scale
// pixels, with the sprite itself at (scale, scale). The one-cell border holds
// the shadow and outline bleed. Stitch relies on all tiles of a render sharing
// that convention.
//
// All functions here are pure: they read their inputs and return freshly
// allocated rasters, so independent renders may run concurrently.
package compositor

import (
	"image"

	"github.com/golang/glog"
)

// Render produces the final tile for one sheet cell: the sprite with its
// shadow and outline, and, if hasMask is set, the mask's texture overlay
// pasted on top through the overlay's own alpha.
func Render(sprite Sprite, mask Mask, upscale int, hasMask bool, st Style) *image.RGBA {
	tile := sprite.Render(upscale, st)
	if !hasMask {
		return tile
	}

	overlay := mask.Render(upscale)
	if overlay.Bounds().Size() != tile.Bounds().Size() {
		glog.Errorf("mask overlay %v does not match sprite tile %v; skipping overlay", overlay.Bounds().Size(), tile.Bounds().Size())
		return tile
	}
	paste(tile, image.Point{}, overlay, extract(overlay, alpha))
	return tile
}

// TileSize returns the size of a tile rendered from a sprite of the passed
// size.
func TileSize(sprite image.Point, upscale int) image.Point {
	return image.Pt((sprite.X+2)*upscale, (sprite.Y+2)*upscale)
}
