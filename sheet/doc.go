// Package sheet models a grid-packed sprite sheet and the optional recolour
// mask that is co-registered with it.
//
// A Sheet is an immutable value. Loading a mask produces a new Sheet that
// shares the primary raster with the old one, so a render in flight never
// sees a half-replaced sheet.
package sheet
