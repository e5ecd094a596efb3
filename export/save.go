package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/modes"
)

// Save writes the frames of a render. Still modes write frame 0 as PNG.
// Animated modes write every frame into a forever-looping GIF, frame i shown
// for durations[i] milliseconds; without a background, palette index 0 is
// transparent.
func Save(w io.Writer, mode modes.Mode, frames []*image.RGBA, durations []int, hasBG bool) error {
	if len(frames) == 0 {
		return errors.Wrap(spriterender.ErrFormat, "no frames to save")
	}
	if !mode.Animated() {
		if err := png.Encode(w, frames[0]); err != nil {
			return errors.Wrap(err, "encoding png")
		}
		return nil
	}
	if len(durations) != len(frames) {
		return errors.Wrapf(spriterender.ErrFormat, "%d frames but %d durations", len(frames), len(durations))
	}
	if err := gif.EncodeAll(w, Animation(frames, durations, hasBG)); err != nil {
		return errors.Wrap(err, "encoding gif")
	}
	return nil
}

// SaveFile is Save into a newly created file at path.
func SaveFile(path string, mode modes.Mode, frames []*image.RGBA, durations []int, hasBG bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := Save(f, mode, frames, durations, hasBG); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing output")
	}
	glog.Infof("saved %d frame(s) of %v to %s", len(frames), mode, path)
	return nil
}

// Animation quantizes the frames into a looping GIF. Delays are converted
// from milliseconds to the format's hundredths of a second.
func Animation(frames []*image.RGBA, durations []int, hasBG bool) *gif.GIF {
	g := &gif.GIF{LoopCount: 0}
	for i, img := range frames {
		g.Image = append(g.Image, paletted(img, !hasBG))
		g.Delay = append(g.Delay, durations[i]/10)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0
	return g
}

// paletted converts img using a median cut palette. With transparent set the
// palette starts with color.Transparent, so anything left undrawn stays
// clear.
func paletted(img *image.RGBA, transparent bool) *image.Paletted {
	n := 256
	if transparent {
		n--
	}
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, n), img)
	if transparent {
		pal = append(color.Palette{color.Transparent}, pal...)
	}

	dst := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(dst, img.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}
