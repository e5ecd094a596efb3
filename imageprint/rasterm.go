//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/pkg/errors"
)

func graphicsCapable() bool {
	if rasterm.IsTermKitty() || rasterm.IsTermItermWez() {
		return true
	}
	capable, err := rasterm.IsSixelCapable()
	return capable && err == nil
}

// PrintRasTerm draws an image using the RasTerm library, picking Kitty,
// iTerm or Sixel output in that order.
func PrintRasTerm(w io.Writer, i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		if capable, serr := rasterm.IsSixelCapable(); !capable || serr != nil {
			return errors.New("terminal has no graphics support")
		}
		err = rasterm.Settings{}.SixelWriteImage(w, Paletted(i, 64))
	}
	if err != nil {
		return errors.Wrap(err, "writing preview")
	}
	_, err = fmt.Fprintf(w, "\n")
	return err
}
