package paving

// ZeroCellSubdivisionsToTreeSubdivisions converts a "subdivisions per
// unit cell" accuracy parameter n into a tree depth relative to the
// primary cell at height h, for a grid of dimension d (spec §4.5):
// n subdivisions per unit box require n*d extra bits past the
// height-0 cell, plus h*d bits to descend from the primary cell at h
// down to the height-0 cell.
func ZeroCellSubdivisionsToTreeSubdivisions(n, height, dimension int) int {
	return dimension*n + dimension*height
}

func checkDimension(grid Grid, box Box) error {
	if grid.Dimension() != box.Dimension() {
		return dimensionMismatchf("grid has dimension %d, box has dimension %d", grid.Dimension(), box.Dimension())
	}
	return nil
}

// AdjoinOuterApproximation refines s so that it covers set, querying
// set.Disjoint (and set.Covers when set implements OpenSet) to decide
// each cell, splitting up to n subdivisions per unit cell below the
// smallest enclosing primary cell of set's bounding box.
func AdjoinOuterApproximation(s *GridTreeSet, set CompactSet, n int) error {
	grid := s.rootCell.grid
	bb := set.BoundingBox()
	if err := checkDimension(grid, bb); err != nil {
		return err
	}
	latticeBox := grid.ToLatticeBox(bb)
	h := SmallestEnclosingPrimaryCellHeight(latticeBox)
	node, stopped := s.alignWithCell(h, true, false)
	if stopped {
		s.bumpGeneration()
		return nil
	}
	d := grid.Dimension()
	maxDepth := ZeroCellSubdivisionsToTreeSubdivisions(n, h, d)
	baseLatticeBox := PrimaryCellLatticeBox(h, d)
	adjoinOuterApproximationRec(node, baseLatticeBox, grid, 0, maxDepth, set)
	s.bumpGeneration()
	return nil
}

func adjoinOuterApproximationRec(node *BinaryTreeNode, latticeBox Box, grid Grid, pathLen, maxDepth int, set CompactSet) {
	box := grid.ToRealBox(latticeBox)
	if Definitely(set.Disjoint(box)) {
		return
	}
	if opener, ok := set.(OpenSet); ok {
		if Definitely(opener.Covers(box)) {
			node.MakeLeaf(DefinitelyTrue)
			return
		}
	}
	if node.IsEnabledLeaf() {
		return
	}
	if pathLen < maxDepth {
		if node.IsLeaf() {
			node.Split()
		}
		d := grid.Dimension()
		axis := pathLen % d
		lb, ub := latticeBox.SplitAxis(axis)
		adjoinOuterApproximationRec(node.Left(), lb, grid, pathLen+1, maxDepth, set)
		adjoinOuterApproximationRec(node.Right(), ub, grid, pathLen+1, maxDepth, set)
		if node.Left().IsEnabledLeaf() && node.Right().IsEnabledLeaf() {
			node.MakeLeaf(DefinitelyTrue)
		}
		return
	}
	if node.IsLeaf() {
		node.SetEnabled()
	} else {
		node.MakeLeaf(DefinitelyTrue)
	}
}

// AdjoinLowerApproximation refines s so that every enabled leaf
// definitely overlaps set; at the depth limit it enables a leaf only
// if overlap is definite. When set also implements OpenSet, a cell
// that is definitely covered is enabled wholesale and then minced to
// the depth limit.
func AdjoinLowerApproximation(s *GridTreeSet, set LocatedSet, n int) error {
	grid := s.rootCell.grid
	bb := set.BoundingBox()
	if err := checkDimension(grid, bb); err != nil {
		return err
	}
	h := SmallestEnclosingPrimaryCellHeight(grid.ToLatticeBox(bb))
	node, _ := s.alignWithCell(h, false, false)
	d := grid.Dimension()
	maxDepth := ZeroCellSubdivisionsToTreeSubdivisions(n, h, d)
	baseLatticeBox := PrimaryCellLatticeBox(h, d)
	if opener, ok := set.(OpenSet); ok {
		adjoinLowerApproxOpenRec(node, baseLatticeBox, grid, 0, maxDepth, opener)
	} else {
		adjoinLowerApproxOvertRec(node, baseLatticeBox, grid, 0, maxDepth, set)
	}
	s.bumpGeneration()
	return nil
}

func adjoinLowerApproxOvertRec(node *BinaryTreeNode, latticeBox Box, grid Grid, pathLen, maxDepth int, set OvertSet) {
	box := grid.ToRealBox(latticeBox)
	if !Definitely(set.Overlaps(box)) {
		return
	}
	if pathLen >= maxDepth {
		if !node.HasEnabled() {
			node.MakeLeaf(DefinitelyTrue)
		}
		return
	}
	if node.IsLeaf() {
		node.Split()
	}
	d := grid.Dimension()
	axis := pathLen % d
	lb, ub := latticeBox.SplitAxis(axis)
	adjoinLowerApproxOvertRec(node.Left(), lb, grid, pathLen+1, maxDepth, set)
	adjoinLowerApproxOvertRec(node.Right(), ub, grid, pathLen+1, maxDepth, set)
}

func adjoinLowerApproxOpenRec(node *BinaryTreeNode, latticeBox Box, grid Grid, pathLen, maxDepth int, set OpenSet) {
	box := grid.ToRealBox(latticeBox)
	if Definitely(set.Covers(box)) {
		node.MakeLeaf(DefinitelyTrue)
		node.Mince(maxDepth - pathLen)
		return
	}
	if Definitely(set.Overlaps(box)) {
		if pathLen >= maxDepth {
			if node.IsLeaf() {
				node.SetEnabled()
			} else {
				node.MakeLeaf(DefinitelyTrue)
			}
			return
		}
		if node.IsLeaf() {
			node.Split()
		}
		d := grid.Dimension()
		axis := pathLen % d
		lb, ub := latticeBox.SplitAxis(axis)
		adjoinLowerApproxOpenRec(node.Left(), lb, grid, pathLen+1, maxDepth, set)
		adjoinLowerApproxOpenRec(node.Right(), ub, grid, pathLen+1, maxDepth, set)
	}
}

// AdjoinInnerApproximation refines s so that every enabled leaf's box
// is definitely inside set; a cell that only possibly overlaps set at
// the depth limit is excluded, never guessed enabled.
func AdjoinInnerApproximation(s *GridTreeSet, set OpenSet, bounding Box, n int) error {
	grid := s.rootCell.grid
	if err := checkDimension(grid, bounding); err != nil {
		return err
	}
	h := SmallestEnclosingPrimaryCellHeight(grid.ToLatticeBox(bounding))
	node, _ := s.alignWithCell(h, false, false)
	d := grid.Dimension()
	maxDepth := ZeroCellSubdivisionsToTreeSubdivisions(n, h, d)
	baseLatticeBox := PrimaryCellLatticeBox(h, d)
	adjoinInnerApproxRec(node, baseLatticeBox, grid, 0, maxDepth, set)
	s.bumpGeneration()
	return nil
}

func adjoinInnerApproxRec(node *BinaryTreeNode, latticeBox Box, grid Grid, pathLen, maxDepth int, set OpenSet) {
	if node.IsEnabledLeaf() {
		return
	}
	box := grid.ToRealBox(latticeBox)
	if Definitely(set.Covers(box)) {
		node.MakeLeaf(DefinitelyTrue)
		return
	}
	if PossiblyTrue(set.Overlaps(box)) {
		if pathLen >= maxDepth {
			return
		}
		if node.IsLeaf() {
			node.Split()
		}
		d := grid.Dimension()
		axis := pathLen % d
		lb, ub := latticeBox.SplitAxis(axis)
		adjoinInnerApproxRec(node.Left(), lb, grid, pathLen+1, maxDepth, set)
		adjoinInnerApproxRec(node.Right(), ub, grid, pathLen+1, maxDepth, set)
	}
}

// AdjoinOverApproximation treats box itself as a trivial compact set
// and delegates to AdjoinOuterApproximation, after validating every
// axis has positive width (spec §7 EmptyInterior).
func AdjoinOverApproximation(s *GridTreeSet, box Box, n int) error {
	if box.Empty() {
		return emptyInteriorf("box %v has non-positive width on some axis", box.Intervals())
	}
	return AdjoinOuterApproximation(s, boxBoundedSet{box: box}, n)
}

// OuterApproximation builds a fresh GridTreeSet on grid containing the
// outer approximation of box at the given accuracy.
func OuterApproximation(box Box, grid Grid, n int) (*GridTreeSet, error) {
	s := NewGridTreeSet(grid)
	if err := AdjoinOverApproximation(s, box, n); err != nil {
		return nil, err
	}
	return s, nil
}
