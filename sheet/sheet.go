package sheet

import (
	"image"
	"image/draw"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
)

// Sheet is a source raster organized as a grid of sprite cells, with a mask
// raster of identical size.
type Sheet struct {
	image   *image.RGBA
	mask    *image.RGBA
	hasMask bool
}

// New creates a sheet from the passed raster. If mask is nil, a fully
// transparent placeholder of the same size is synthesized.
//
// A mask whose size differs from the sheet yields ErrDimensionMismatch.
func New(img image.Image, mask image.Image) (*Sheet, error) {
	if img == nil {
		return nil, spriterender.Geometryf("sheet: no image")
	}
	s := &Sheet{image: ToRGBA(img)}
	if mask == nil {
		s.mask = image.NewRGBA(s.image.Bounds())
		return s, nil
	}
	if mask.Bounds().Size() != img.Bounds().Size() {
		return nil, errors.Wrapf(spriterender.ErrDimensionMismatch,
			"mask size %v does not match sheet size %v", mask.Bounds().Size(), img.Bounds().Size())
	}
	s.mask = ToRGBA(mask)
	s.hasMask = true
	return s, nil
}

// WithMask returns a new sheet combining this sheet's raster with the passed
// mask. The receiver is left untouched.
func (s *Sheet) WithMask(mask image.Image) (*Sheet, error) {
	if mask == nil {
		return nil, spriterender.Geometryf("sheet: no mask")
	}
	if mask.Bounds().Size() != s.Size() {
		return nil, errors.Wrapf(spriterender.ErrDimensionMismatch,
			"mask size %v does not match sheet size %v", mask.Bounds().Size(), s.Size())
	}
	return &Sheet{image: s.image, mask: ToRGBA(mask), hasMask: true}, nil
}

// Size returns the pixel dimensions of the sheet.
func (s *Sheet) Size() image.Point {
	return s.image.Bounds().Size()
}

// HasMask reports whether a real mask was loaded (as opposed to the
// transparent placeholder).
func (s *Sheet) HasMask() bool {
	return s.hasMask
}

// Image returns the primary raster. Callers must not modify it.
func (s *Sheet) Image() *image.RGBA {
	return s.image
}

// Mask returns the mask raster. Callers must not modify it.
func (s *Sheet) Mask() *image.RGBA {
	return s.mask
}

// Columns returns how many whole cells of the passed width fit across the
// sheet.
func (s *Sheet) Columns(width int) int {
	if width <= 0 {
		return 0
	}
	return s.Size().X / width
}

// Rows returns how many whole cells of the passed height fit down the sheet.
func (s *Sheet) Rows(height int) int {
	if height <= 0 {
		return 0
	}
	return s.Size().Y / height
}

// Cells returns the number of whole cells in the sheet.
func (s *Sheet) Cells(width, height int) int {
	return s.Columns(width) * s.Rows(height)
}

// Region returns the rectangle GetSprite would crop for the passed index.
func (s *Sheet) Region(index, width, height int, padding float64) (image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, spriterender.Geometryf("sprite size %dx%d must be positive", width, height)
	}
	columns := s.Columns(width)
	if columns == 0 {
		return image.Rectangle{}, spriterender.Geometryf("sheet width %d is narrower than sprite width %d", s.Size().X, width)
	}
	column := floorMod(index, columns)
	row := floorDiv(index, columns)

	return image.Rect(
		int((float64(column)-padding)*float64(width)),
		int((float64(row)-padding)*float64(height)),
		int((float64(column)+1+padding)*float64(width)),
		int((float64(row)+1+padding)*float64(height)),
	), nil
}

// GetSprite returns the sprite at the passed row-major index, and the
// matching mask area. Padding expands the crop by that many cells on every
// side. Areas outside the sheet come back fully transparent.
func (s *Sheet) GetSprite(index, width, height int, padding float64) (sprite, mask *image.RGBA, err error) {
	r, err := s.Region(index, width, height, padding)
	if err != nil {
		return nil, nil, err
	}
	glog.V(2).Infof("sheet: sprite %d at %v", index, r)
	return Crop(s.image, r), Crop(s.mask, r), nil
}

// Crop copies the passed rectangle of src into a new zero-origin raster.
// Parts of the rectangle outside src are left transparent.
func Crop(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

// ToRGBA returns a zero-origin RGBA copy of img.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
