// Package imageprint prints rendered frames on a terminal, as inline
// graphics where the terminal supports them and as coloured character
// cells otherwise.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
)

// Style selects how an image is put on the terminal.
type Style int

const (
	Auto Style = iota
	// Graphics uses the Kitty, iTerm or Sixel protocol.
	Graphics
	TrueColor
	Color256
	NoColor
)

var styleNames = [...]string{
	Auto:      "auto",
	Graphics:  "graphics",
	TrueColor: "truecolor",
	Color256:  "256",
	NoColor:   "none",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle accepts one of the names String returns.
func ParseStyle(s string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(s, n) {
			return Style(i), nil
		}
	}
	return Auto, spriterender.Parsef("unknown preview style %q", s)
}

// Detect picks the richest style the terminal on stdout advertises.
func Detect() Style {
	if graphicsCapable() {
		return Graphics
	}
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return TrueColor
	}
	return Color256
}

// Print draws img on w in the passed style; Auto is resolved with Detect.
// Character styles use one cell pair per pixel, so callers should shrink
// large images first.
func Print(w io.Writer, i image.Image, s Style) error {
	if s == Auto {
		s = Detect()
	}
	switch s {
	case Graphics:
		return PrintRasTerm(w, i)
	case TrueColor:
		return Print24bit(w, i, true)
	case Color256:
		return Print256Color(w, i, true)
	case NoColor:
		return PrintNoColor(w, i, false)
	}
	return spriterender.Parsef("unknown preview style %d", int(s))
}

type cellStyle int

const (
	cellTrueColor cellStyle = iota
	cell256
	cellPlain
)

func shade(col ic.Color, cs cellStyle, blanks bool) string {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if cs == cellPlain {
			return "  "
		}
		return "\x1b[0m  "
	}

	glyph := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			glyph = ".."
		case a < 64:
			glyph = "--"
		case a < 128:
			glyph = "=="
		default:
			glyph = "##"
		}
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch cs {
	case cellTrueColor:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, glyph)
	case cell256:
		return color.RGB(r, g, b, true).Sprint(glyph)
	}
	return glyph
}

func printCells(w io.Writer, i image.Image, cs cellStyle, blanks bool) error {
	var buf bytes.Buffer
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			buf.WriteString(shade(i.At(x, y), cs, blanks))
		}
		if cs != cellPlain {
			buf.WriteString("\x1b[0m")
		}
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "writing preview")
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, cell256, blanks)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, cellTrueColor, blanks)
}

// PrintNoColor draws an image without using color escape sequences. Only
// makes sense with blanks=false.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) error {
	return printCells(w, i, cellPlain, blanks)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return errors.Wrap(err, "writing preview")
}
