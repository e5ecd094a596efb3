package sheet

// This file contains the boundary with the filesystem: opening and decoding
// sheets, masks and textures.

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"badc0de.net/pkg/go-spriterender"
)

// Decode reads a raster in any registered format (PNG, GIF, JPEG, BMP, TIFF)
// and wraps it in a new Sheet without a mask. It is the entry point for
// rasters that do not come from a file, such as pasted images.
func Decode(r io.Reader) (*Sheet, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(spriterender.ErrFormat, "decoding sheet: %v", err)
	}
	glog.Infof("decoded %s sheet of size %v", format, img.Bounds().Size())
	return New(img, nil)
}

// Load opens and decodes the sheet at the passed path. The path is returned
// alongside so callers can remember where the current sheet came from.
func Load(path string) (*Sheet, string, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, "", err
	}
	s, err := New(img, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "loading sheet %q", path)
	}
	return s, path, nil
}

// LoadMask opens and decodes the mask at the passed path, and pairs it with
// the raster of the existing sheet. The existing sheet stays valid on error.
func LoadMask(path string, existing *Sheet) (*Sheet, string, error) {
	if existing == nil {
		return nil, "", spriterender.Geometryf("loading mask %q: no sheet loaded", path)
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, "", err
	}
	s, err := existing.WithMask(img)
	if err != nil {
		return nil, "", errors.Wrapf(err, "loading mask %q", path)
	}
	return s, path, nil
}

// LoadImage opens and decodes any registered raster format into a zero-origin
// RGBA image. It is also used for clothing and accessory textures.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		glog.Errorf("opening %q: %v", path, err)
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		glog.Errorf("decoding %q: %v", path, err)
		return nil, errors.Wrapf(err, "decoding %q", path)
	}
	glog.Infof("loaded image %q of size %v", path, img.Bounds().Size())
	return img, nil
}

// DecodeImage decodes any registered raster format into a zero-origin RGBA
// image.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(spriterender.ErrFormat, "%v", err)
	}
	return ToRGBA(img), nil
}
