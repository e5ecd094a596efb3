package main

import (
	"flag"
	"image"
	"io"

	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-spriterender/imageprint"
)

var (
	preview      = flag.Bool("preview", false, "print the frames on the terminal")
	previewStyle = flag.String("preview_style", "auto", "preview output: auto, graphics, truecolor, 256 or none")
	downsize     = flag.Bool("downsize", true, "shrink previews to fit the terminal")
)

func previewFrames(w io.Writer, frames []*image.RGBA) error {
	st, err := imageprint.ParseStyle(*previewStyle)
	if err != nil {
		return err
	}
	if st == imageprint.Auto {
		st = imageprint.Detect()
	}
	for _, f := range frames {
		if err := imageprint.Print(w, fit(f, st), st); err != nil {
			return err
		}
	}
	return nil
}

// fit shrinks img to the terminal. Graphics output is sized against the
// window's pixels when the terminal reports them; character output uses one
// cell pair per pixel.
func fit(img image.Image, st imageprint.Style) image.Image {
	if !*downsize {
		return img
	}
	termSize, err := GetTermSize()
	if err != nil {
		return img
	}
	if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && st == imageprint.Graphics {
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.NearestNeighbor)
	}
	return resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
}
