package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// bmpFileHeader is the length of the BITMAPFILEHEADER a DIB payload lacks.
const bmpFileHeader = 14

// Encodings holds a copied render in each format a clipboard owner offers.
// BMP and DIB carry no alpha; the render is flattened onto black for them.
type Encodings struct {
	PNG  []byte
	TIFF []byte
	BMP  []byte
	DIB  []byte
}

// Clipboard encodes img for every clipboard format.
func Clipboard(img image.Image) (*Encodings, error) {
	var e Encodings

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	e.PNG = append([]byte(nil), buf.Bytes()...)

	buf.Reset()
	if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return nil, errors.Wrap(err, "encoding tiff")
	}
	e.TIFF = append([]byte(nil), buf.Bytes()...)

	buf.Reset()
	if err := bmp.Encode(&buf, flatten(img)); err != nil {
		return nil, errors.Wrap(err, "encoding bmp")
	}
	e.BMP = append([]byte(nil), buf.Bytes()...)
	e.DIB = e.BMP[bmpFileHeader:]

	return &e, nil
}

// DataURL returns img as a base64 PNG data URL, the form HTML paste targets
// accept.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "encoding png")
	}
	byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
	if err != nil {
		return "", errors.Wrap(err, "encoding data url")
	}
	return string(byt), nil
}

func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
