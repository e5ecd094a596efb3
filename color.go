package spriterender

import (
	"fmt"
	ic "image/color"
	"strings"

	"github.com/gookit/color"
)

// ParseHexColor converts "#rrggbb", "rrggbb" or the short "#rgb" form into
// an opaque colour.
func ParseHexColor(s string) (ic.RGBA, error) {
	if strings.ContainsAny(s, "+-") {
		return ic.RGBA{}, Parsef("colour %q: want #rrggbb", s)
	}
	rgb := color.HexToRGB(s)
	if len(rgb) != 3 {
		return ic.RGBA{}, Parsef("colour %q: want #rrggbb", s)
	}
	for _, v := range rgb {
		if v < 0 || v > 0xFF {
			return ic.RGBA{}, Parsef("colour %q: component %d out of range", s, v)
		}
	}
	return ic.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xFF}, nil
}

// HexColor formats an opaque colour the way ParseHexColor accepts it.
func HexColor(c ic.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
