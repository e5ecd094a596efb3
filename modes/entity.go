package modes

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
)

// Cell offsets within an entity pose row.
const (
	poseStill = iota
	poseWalk1
	poseWalk2
	poseGap
	poseAttack1
	poseAttack2a
	poseAttack2b

	poseRowLength
)

// entitySlots is the number of tile columns in each frame row: still, walk
// and attack, plus one spare column for the double-width second attack pose.
const entitySlots = 4

// renderEntity assembles the two alternating frames of an entity animation.
// Frame 0 shows still, walk 1 and attack 1 for each pose row; frame 1 shows
// still, walk 2 and the combined attack 2a+2b.
func renderEntity(p Params) ([]*image.RGBA, error) {
	first, err := IndexFilter(p.Index)
	if err != nil {
		return nil, &RenderError{Mode: Entity, Param: "index", Err: err}
	}
	rows, err := LengthFilter(p.Length, p.Index, p.Sheet.Size(), p.Width, p.Height, poseRowLength, false)
	if err != nil {
		return nil, &RenderError{Mode: Entity, Param: "length", Err: err}
	}
	cells := p.Sheet.Cells(p.Width, p.Height)
	switch {
	case first < 0 || first >= cells:
		return nil, &RenderError{Mode: Entity, Param: "index", Err: spriterender.Geometryf("index %d outside sheet of %d cells", first, cells)}
	case rows <= 0 || first+rows*poseRowLength > cells:
		return nil, &RenderError{Mode: Entity, Param: "length", Err: spriterender.Geometryf("%d pose rows from index %d outside sheet of %d cells", rows, first, cells)}
	}

	frame0 := make([]*image.RGBA, rows)
	frame1 := make([]*image.RGBA, rows)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < rows; i++ {
		i := i
		g.Go(func() error {
			r0, r1, err := p.poseRow(first + i*poseRowLength)
			if err != nil {
				return err
			}
			frame0[i], frame1[i] = r0, r1
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f0, err := compositor.Stitch(1, frame0)
	if err != nil {
		return nil, err
	}
	f1, err := compositor.Stitch(1, frame1)
	if err != nil {
		return nil, err
	}
	return []*image.RGBA{p.background(f0), p.background(f1)}, nil
}

// poseRow renders both frame rows for the pose row starting at base.
func (p Params) poseRow(base int) (row0, row1 *image.RGBA, err error) {
	tiles, err := p.cells([]int{base + poseStill, base + poseWalk1, base + poseAttack1})
	if err != nil {
		return nil, nil, err
	}
	still, walk1, attack1 := tiles[0], tiles[1], tiles[2]

	// Some sheets leave walk 2 empty, meaning it repeats walk 1.
	walk2 := walk1
	spr, msk, err := p.Sheet.GetSprite(base+poseWalk2, p.Width, p.Height, 0)
	if err != nil {
		return nil, nil, err
	}
	if !(compositor.Sprite{Image: spr}).Empty() {
		walk2 = p.render(spr, msk)
	}

	attack2, err := p.doubleWide(base + poseAttack2a)
	if err != nil {
		return nil, nil, err
	}

	if row0, err = compositor.Stitch(entitySlots, []*image.RGBA{still, walk1, attack1}); err != nil {
		return nil, nil, err
	}
	if row1, err = compositor.Stitch(entitySlots, []*image.RGBA{still, walk2, attack2}); err != nil {
		return nil, nil, err
	}
	return row0, row1, nil
}

// doubleWide joins the raw cells at index and index+1 side by side and
// renders them as one sprite, so the shadow and outline wrap the pair without
// a seam.
func (p Params) doubleWide(index int) (*image.RGBA, error) {
	var sprs, msks []*image.RGBA
	for _, idx := range []int{index, index + 1} {
		spr, msk, err := p.Sheet.GetSprite(idx, p.Width, p.Height, 0)
		if err != nil {
			return nil, err
		}
		sprs, msks = append(sprs, spr), append(msks, msk)
	}
	spr, err := compositor.Stitch(2, sprs)
	if err != nil {
		return nil, err
	}
	msk, err := compositor.Stitch(2, msks)
	if err != nil {
		return nil, err
	}
	return p.render(spr, msk), nil
}
