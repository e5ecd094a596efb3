package spriterender

import (
	"github.com/pkg/errors"
)

// Error classes returned (wrapped) by the engine. Use errors.Is or
// errors.Cause to classify an error.
var (
	// ErrParse marks malformed index, length, speed list or colour input.
	ErrParse = errors.New("parse error")

	// ErrDimensionMismatch marks a mask raster whose size differs from the
	// sheet it is being paired with.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrGeometry marks impossible geometry: zero or negative sizes, or an
	// index range falling outside the sheet.
	ErrGeometry = errors.New("geometry error")

	// ErrFormat marks input that could not be decoded as a raster, or a
	// raster that could not be encoded.
	ErrFormat = errors.New("format error")
)

// Parsef returns an ErrParse annotated with the formatted message.
func Parsef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, format, args...)
}

// Geometryf returns an ErrGeometry annotated with the formatted message.
func Geometryf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrGeometry, format, args...)
}
