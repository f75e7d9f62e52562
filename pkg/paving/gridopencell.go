package paving

// GridOpenCell shares GridCell's (grid, height, word) representation
// but denotes the open set formed by doubling the base cell's extent
// in the positive direction of every axis, so adjacent base cells'
// open cells overlap by exactly one base cell per axis. This is what
// lets an open cell cover a shared boundary between two adjacent
// enabled base cells.
type GridOpenCell struct {
	grid     Grid
	height   int
	word     BinaryWord
	box      Box
	boxValid bool
}

// NewGridOpenCell builds an open cell from its base-cell components.
func NewGridOpenCell(grid Grid, height int, word BinaryWord) GridOpenCell {
	return GridOpenCell{grid: grid, height: height, word: word.Clone()}
}

func (oc GridOpenCell) Grid() Grid       { return oc.grid }
func (oc GridOpenCell) Height() int      { return oc.height }
func (oc GridOpenCell) Word() BinaryWord { return oc.word.Clone() }

// baseCell returns the underlying (non-open) GridCell with the same representation.
func (oc GridOpenCell) baseCell() GridCell {
	return GridCell{grid: oc.grid, height: oc.height, word: oc.word}
}

// computeLatticeBox doubles the upper lattice bound of every axis
// (lower stays, upper += width), per spec §4.3.
func (oc GridOpenCell) computeLatticeBox() Box {
	latticeBox := oc.baseCell().ComputeLatticeBox()
	ivs := latticeBox.Intervals()
	for i := range ivs {
		width := ivs[i].Width()
		ivs[i] = Interval{Lower: ivs[i].Lower, Upper: ivs[i].Upper + width}
	}
	return NewBox(ivs...)
}

// Box returns the open cell's real-space box.
func (oc GridOpenCell) Box() Box {
	if oc.boxValid {
		return oc.box
	}
	return oc.grid.ToRealBox(oc.computeLatticeBox())
}

// Split returns the left, middle, or right sub-open-cell, selected by
// dir (DefinitelyFalse=left, Possibly=middle, DefinitelyTrue=right).
// Left and middle just extend the word in place; right crosses into
// the axis-dim neighbor, which may re-root the word to a taller
// primary cell.
func (oc GridOpenCell) Split(dir Tribool) GridOpenCell {
	d := oc.grid.Dimension()
	switch dir {
	case DefinitelyFalse:
		return GridOpenCell{grid: oc.grid, height: oc.height, word: oc.word.Push(false)}
	case Possibly:
		return GridOpenCell{grid: oc.grid, height: oc.height, word: oc.word.Push(true)}
	default:
		dim := len(oc.word) % d
		neighbor := oc.baseCell().NeighboringCell(dim)
		return GridOpenCell{grid: oc.grid, height: neighbor.height, word: neighbor.word.Push(false)}
	}
}

// Closure returns the GridTreeSet containing the 2^d neighboring base
// cells of oc (the base cell plus all axis-positive neighbors sharing
// a face, edge, or corner with it).
func (oc GridOpenCell) Closure() *GridTreeSet {
	d := oc.grid.Dimension()
	latticeBox := oc.computeLatticeBox()
	height := SmallestEnclosingPrimaryCellHeight(latticeBox)
	word := oc.word.Clone()
	if height > oc.height {
		word = PrimaryCellPath(d, height, oc.height).Concat(word)
	}
	base := GridCell{grid: oc.grid, height: height, word: word}

	result := NewGridTreeSet(oc.grid)
	result.UpToPrimaryCell(height)

	combinations := 1 << d
	for mask := 0; mask < combinations; mask++ {
		flags := make([]bool, d)
		for axis := 0; axis < d; axis++ {
			flags[axis] = mask&(1<<axis) != 0
		}
		neighbor := base.NeighboringCellMulti(flags)
		result.Adjoin(neighbor)
	}
	return result
}

// SmallestOpenSubcell finds the smallest open sub-cell of oc that
// still covers box, by recursively trying the left, middle, then
// right split in turn. It returns the zero value and false if oc's
// own box does not cover box.
func (oc GridOpenCell) SmallestOpenSubcell(box Box) (GridOpenCell, bool) {
	if !oc.Box().Covers(box) {
		return GridOpenCell{}, false
	}
	for _, dir := range []Tribool{DefinitelyFalse, Possibly, DefinitelyTrue} {
		sub := oc.Split(dir)
		if sub.Box().Covers(box) {
			if smaller, ok := sub.SmallestOpenSubcell(box); ok {
				return smaller, true
			}
			return sub, true
		}
	}
	return oc, true
}

// OuterApproximationOpenCell returns the smallest open cell covering box,
// found by locating box's smallest enclosing primary cell, taking its
// interior, and recursively descending via SmallestOpenSubcell.
func OuterApproximationOpenCell(box Box, grid Grid) (GridOpenCell, bool) {
	seed := SmallestEnclosingPrimaryCell(box, grid).Interior()
	return seed.SmallestOpenSubcell(box)
}

// CoverCellAndBorders enumerates all 2^d axis-flag combinations
// (including the all-false combination, which yields cell's own
// interior) and, for each, checks whether the resulting neighbor cell
// is enabled in set. Every combination whose neighbor is enabled
// contributes an open cell covering the shared interior/face/edge/
// corner to result.
func CoverCellAndBorders(cell GridCell, set GridTreeSubset, result *[]GridOpenCell) {
	d := cell.grid.Dimension()
	combinations := 1 << d
	for mask := 0; mask < combinations; mask++ {
		flags := make([]bool, d)
		for axis := 0; axis < d; axis++ {
			flags[axis] = mask&(1<<axis) != 0
		}
		neighbor := cell.NeighboringCellMulti(flags)
		if set.rootCell.height > neighbor.height {
			continue
		}
		combined := PrimaryCellPath(d, neighbor.height, set.rootCell.height).Concat(set.rootCell.word)
		if !combined.IsPrefixOf(neighbor.word) {
			continue // neighbor sits outside set's primary cell entirely.
		}
		relative := neighbor.word[len(combined):]
		if !set.root.IsEnabled(relative) {
			continue
		}
		suffix := make(BinaryWord, d)
		for j := 0; j < d; j++ {
			suffix[j] = flags[(len(cell.word)+j)%d]
		}
		oc := GridOpenCell{grid: cell.grid, height: cell.height, word: cell.word.Concat(suffix)}
		*result = append(*result, oc)
	}
}

// OpenCellIntersection computes the open-cell intersection of a and b.
// If one box covers the other, the smaller open cell is the exact
// answer. If the boxes merely overlap, it computes both closures,
// intersects them as pavings, and for each enabled cell in that
// intersection emits the interior plus shared-boundary open cells via
// CoverCellAndBorders. Disjoint boxes yield no open cells.
func OpenCellIntersection(a, b GridOpenCell) []GridOpenCell {
	aBox, bBox := a.Box(), b.Box()
	switch {
	case aBox.Covers(bBox):
		return []GridOpenCell{b}
	case bBox.Covers(aBox):
		return []GridOpenCell{a}
	case !aBox.Overlaps(bBox):
		return nil
	}

	closureA, closureB := a.Closure(), b.Closure()
	targetHeight := closureA.rootCell.height
	if closureB.rootCell.height > targetHeight {
		targetHeight = closureB.rootCell.height
	}
	closureA.UpToPrimaryCell(targetHeight)
	closureB.UpToPrimaryCell(targetHeight)
	closureA.RestrictSubset(closureB.GridTreeSubset)

	var out []GridOpenCell
	for _, cell := range closureA.Cells() {
		CoverCellAndBorders(cell, closureA.GridTreeSubset, &out)
	}
	return out
}
