// Package index maintains an rtreego spatial index over a paving's
// enabled leaves, so a caller can answer "which cells sit near this
// point/region" in less than the O(leaves) a Cells() scan costs,
// without the GridTreeSet's tree itself ever needing bounding-box
// bookkeeping baked into BinaryTreeNode.
package index

import (
	"github.com/chazu/paving/pkg/paving"
	"github.com/dhconnelly/rtreego"
)

// cellEntry adapts a single GridCell into rtreego.Spatial so the
// r-tree can index it directly, keyed on the cell's real-space box.
type cellEntry struct {
	cell paving.GridCell
	rect rtreego.Rect
}

func (e *cellEntry) Bounds() rtreego.Rect { return e.rect }

func toRect(box paving.Box) (rtreego.Rect, error) {
	d := box.Dimension()
	origin := make(rtreego.Point, d)
	lengths := make([]float64, d)
	for i := 0; i < d; i++ {
		ax := box.Axis(i)
		origin[i] = ax.Lower
		lengths[i] = ax.Width()
		if lengths[i] <= 0 {
			// rtreego rejects a zero-length rectangle; give it a
			// negligible thickness rather than drop the cell.
			lengths[i] = 1e-12
		}
	}
	return rtreego.NewRect(origin, lengths)
}

// Index is a read-through spatial index over a *paving.GridTreeSet. It
// lazily rebuilds its r-tree whenever the set's generation token has
// advanced since the last query, so a caller never has to remember to
// call a Refresh method after mutating the underlying set.
type Index struct {
	set        *paving.GridTreeSet
	tree       *rtreego.Rtree
	generation [16]byte
	built      bool
}

// New returns an Index over set. The underlying r-tree is built lazily
// on the first query.
func New(set *paving.GridTreeSet) *Index {
	return &Index{set: set}
}

func (ix *Index) ensureFresh() {
	gen := ix.set.Generation()
	if ix.built && gen == ix.generation {
		return
	}
	dim := ix.set.Grid().Dimension()
	tree := rtreego.NewTree(dim, 25, 50)
	for _, cell := range ix.set.Cells() {
		rect, err := toRect(cell.Box())
		if err != nil {
			continue
		}
		tree.Insert(&cellEntry{cell: cell, rect: rect})
	}
	ix.tree = tree
	ix.generation = gen
	ix.built = true
}

// Intersecting returns every enabled leaf whose box overlaps box.
func (ix *Index) Intersecting(box paving.Box) []paving.GridCell {
	ix.ensureFresh()
	rect, err := toRect(box)
	if err != nil {
		return nil
	}
	results := ix.tree.SearchIntersect(rect)
	out := make([]paving.GridCell, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*cellEntry).cell)
	}
	return out
}

// Nearest returns the enabled leaf whose box is closest to point, and
// false if the index is empty. point must have the same dimension as
// the underlying grid.
func (ix *Index) Nearest(point []float64) (paving.GridCell, bool) {
	ix.ensureFresh()
	result := ix.tree.NearestNeighbor(rtreego.Point(point))
	if result == nil {
		return paving.GridCell{}, false
	}
	return result.(*cellEntry).cell, true
}

// Size returns the number of cells currently indexed.
func (ix *Index) Size() int {
	ix.ensureFresh()
	return ix.tree.Size()
}
