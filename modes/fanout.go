package modes

import (
	"image"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// cells renders the passed sheet indices concurrently. The result is in the
// order of indices.
func (p Params) cells(indices []int) ([]*image.RGBA, error) {
	tiles := make([]*image.RGBA, len(indices))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, idx := range indices {
		i, idx := i, idx
		g.Go(func() error {
			tile, err := p.cell(idx)
			if err != nil {
				return err
			}
			glog.V(2).Infof("rendered cell %d", idx)
			tiles[i] = tile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tiles, nil
}

// span returns n consecutive indices starting at first.
func span(first, n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = first + i
	}
	return indices
}
