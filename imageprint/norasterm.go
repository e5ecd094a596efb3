//go:build windows

package imageprint

import (
	"flag"
	"image"
	"io"

	"github.com/pkg/errors"
)

var (
	forceITerm = flag.Bool("force_iterm", false, "value to force iterm detection to take (implementation variant: no rasterm)")
)

func graphicsCapable() bool {
	return *forceITerm
}

// PrintRasTerm falls back to iTerm's inline image escape when forced;
// rasterm is not used on this platform.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if *forceITerm {
		return PrintITerm(w, i, "preview.png")
	}
	return errors.New("rasterm not supported on windows")
}
