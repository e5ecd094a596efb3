// Package export writes rendered frames out: PNG for still modes, looping
// GIF for animated ones, and the set of encodings a clipboard owner offers
// for a copied render.
package export
