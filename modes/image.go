package modes

import (
	"image"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
)

// linear resolves index and length for the modes that walk consecutive
// cells, and checks that the whole run lies on the sheet.
func (p Params) linear(mode Mode) (first, n int, err error) {
	first, err = IndexFilter(p.Index)
	if err != nil {
		return 0, 0, &RenderError{Mode: mode, Param: "index", Err: err}
	}
	n, err = LengthFilter(p.Length, p.Index, p.Sheet.Size(), p.Width, p.Height, 1, false)
	if err != nil {
		return 0, 0, &RenderError{Mode: mode, Param: "length", Err: err}
	}

	cells := p.Sheet.Cells(p.Width, p.Height)
	switch {
	case first < 0 || first >= cells:
		return 0, 0, &RenderError{Mode: mode, Param: "index", Err: spriterender.Geometryf("index %d outside sheet of %d cells", first, cells)}
	case n <= 0 || first+n > cells:
		return 0, 0, &RenderError{Mode: mode, Param: "length", Err: spriterender.Geometryf("length %d from index %d outside sheet of %d cells", n, first, cells)}
	}
	return first, n, nil
}

// renderImage stitches consecutive cells into one picture, at most one sheet
// row wide.
func renderImage(p Params) ([]*image.RGBA, error) {
	first, n, err := p.linear(Image)
	if err != nil {
		return nil, err
	}
	tiles, err := p.cells(span(first, n))
	if err != nil {
		return nil, err
	}

	columns := p.Sheet.Columns(p.Width)
	if n < columns {
		columns = n
	}
	final, err := compositor.Stitch(columns, tiles)
	if err != nil {
		return nil, err
	}
	return []*image.RGBA{p.background(final)}, nil
}

// renderAnimation returns consecutive cells as separate, same-sized frames.
func renderAnimation(p Params) ([]*image.RGBA, error) {
	first, n, err := p.linear(Animation)
	if err != nil {
		return nil, err
	}
	frames, err := p.cells(span(first, n))
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		frames[i] = p.background(f)
	}
	return frames, nil
}
