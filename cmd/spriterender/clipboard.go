package main

import (
	"image"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender/export"
)

// writeClipboard stores each clipboard encoding of img in dir, for a
// platform clipboard helper to pick up.
func writeClipboard(dir string, img image.Image) error {
	e, err := export.Clipboard(img)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating clipboard dir")
	}
	for name, b := range map[string][]byte{
		"clip.png":  e.PNG,
		"clip.tiff": e.TIFF,
		"clip.bmp":  e.BMP,
		"clip.dib":  e.DIB,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}
	glog.Infof("wrote clipboard encodings to %s", dir)
	return nil
}
