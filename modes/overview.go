package modes

import (
	"image"

	"github.com/bradfitz/iter"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
)

const (
	// overviewBlock is the number of cells describing one entity: three pose
	// rows (front, side, back) of poseRowLength cells.
	overviewBlock = 3 * poseRowLength
	// overviewColumns is the tile width of the overview grid.
	overviewColumns = 6
)

// renderOverview collects the first cell of up to three pose rows of
// consecutive entity blocks, starting at index, into a six-column grid.
func renderOverview(p Params) ([]*image.RGBA, error) {
	first, err := IndexFilter(p.Index)
	if err != nil {
		return nil, &RenderError{Mode: Overview, Param: "index", Err: err}
	}
	slots, err := LengthFilter(p.Length, p.Index, p.Sheet.Size(), p.Width, p.Height, poseRowLength, true)
	if err != nil {
		return nil, &RenderError{Mode: Overview, Param: "length", Err: err}
	}
	if slots < 1 || slots > 3 {
		return nil, &RenderError{Mode: Overview, Param: "length", Err: spriterender.Geometryf("%d pose slots; want 1 to 3", slots)}
	}
	cells := p.Sheet.Cells(p.Width, p.Height)
	if first < 0 || first >= cells {
		return nil, &RenderError{Mode: Overview, Param: "index", Err: spriterender.Geometryf("index %d outside sheet of %d cells", first, cells)}
	}

	// One block per seven cells of the whole sheet, counted from the first
	// cell regardless of index. Slots past the sheet end render as blank
	// tiles, which keeps every block aligned in the grid.
	blocks := cells / poseRowLength
	if blocks == 0 {
		return nil, &RenderError{Mode: Overview, Param: "sheet", Err: spriterender.Geometryf("sheet of %d cells holds no pose row", cells)}
	}
	var indices []int
	for i := range iter.N(blocks) {
		for j := range iter.N(slots) {
			indices = append(indices, first+i*overviewBlock+j*poseRowLength)
		}
	}

	tiles, err := p.cells(indices)
	if err != nil {
		return nil, err
	}
	final, err := compositor.Stitch(overviewColumns, tiles)
	if err != nil {
		return nil, err
	}
	return []*image.RGBA{p.background(final)}, nil
}
