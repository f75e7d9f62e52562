package paving

// regionOpRec implements all four oracle-driven restrict/remove
// variants with a single recursive shape (spec §4.5's table):
// keepIfInside selects restrict (true: keep what's inside the region)
// vs remove (false: drop what's inside the region); retainAmbiguous
// selects the outer (true: keep ambiguous cells) vs inner (false: drop
// ambiguous cells) fallback once the depth limit is reached. Cells
// definitely inside or definitely outside the region are resolved the
// same way regardless of outer/inner, since only the ambiguous case is
// where the outer/inner distinction matters.
func regionOpRec(node *BinaryTreeNode, latticeBox Box, grid Grid, depth, maxDepth int, set OpenSet, keepIfInside, retainAmbiguous bool) {
	box := grid.ToRealBox(latticeBox)
	insideDefinite := Definitely(set.Covers(box))
	outsideDefinite := DefinitelyNot(set.Overlaps(box))

	switch {
	case insideDefinite:
		if !keepIfInside {
			node.MakeLeaf(DefinitelyFalse)
		}
	case outsideDefinite:
		if keepIfInside {
			node.MakeLeaf(DefinitelyFalse)
		}
	default:
		if node.IsDisabledLeaf() {
			return
		}
		if depth >= maxDepth {
			if !retainAmbiguous {
				node.MakeLeaf(DefinitelyFalse)
			}
			return
		}
		if node.IsLeaf() {
			node.Split()
		}
		d := grid.Dimension()
		axis := depth % d
		lb, ub := latticeBox.SplitAxis(axis)
		regionOpRec(node.Left(), lb, grid, depth+1, maxDepth, set, keepIfInside, retainAmbiguous)
		regionOpRec(node.Right(), ub, grid, depth+1, maxDepth, set, keepIfInside, retainAmbiguous)
		if node.Left().IsLeaf() && node.Right().IsLeaf() && node.Left().Enabled() == node.Right().Enabled() {
			node.MakeLeaf(node.Left().Enabled())
		}
	}
}

// regionOp runs regionOpRec over the whole of s, using s's current
// depth as the mince limit (no separate accuracy parameter — this
// mirrors the original's OpenSetInterface-driven wrappers, which mince
// no deeper than the tree's actual current depth).
func (s *GridTreeSet) regionOp(set OpenSet, keepIfInside, retainAmbiguous bool) {
	maxDepth := s.root.Depth()
	latticeBox := s.rootCell.ComputeLatticeBox()
	regionOpRec(s.root, latticeBox, s.rootCell.grid, 0, maxDepth, set, keepIfInside, retainAmbiguous)
	s.bumpGeneration()
}

// OuterRestrict keeps every leaf not definitely outside set.
func (s *GridTreeSet) OuterRestrict(set OpenSet) { s.regionOp(set, true, true) }

// InnerRestrict keeps only leaves definitely inside set.
func (s *GridTreeSet) InnerRestrict(set OpenSet) { s.regionOp(set, true, false) }

// OuterRemove keeps every leaf not definitely inside set.
func (s *GridTreeSet) OuterRemove(set OpenSet) { s.regionOp(set, false, true) }

// InnerRemove keeps only leaves definitely outside set.
func (s *GridTreeSet) InnerRemove(set OpenSet) { s.regionOp(set, false, false) }

// regionOpCheckerRec is regionOpRec's SetChecker-driven counterpart: a
// single generic Check(box) call stands in for both Covers and
// Overlaps — DefinitelyTrue means inside, DefinitelyFalse means
// outside, Possibly means ambiguous.
func regionOpCheckerRec(node *BinaryTreeNode, latticeBox Box, grid Grid, depth, maxDepth int, check SetChecker, keepIfInside, retainAmbiguous bool) {
	box := grid.ToRealBox(latticeBox)
	switch check.Check(box) {
	case DefinitelyTrue:
		if !keepIfInside {
			node.MakeLeaf(DefinitelyFalse)
		}
	case DefinitelyFalse:
		if keepIfInside {
			node.MakeLeaf(DefinitelyFalse)
		}
	default:
		if node.IsDisabledLeaf() {
			return
		}
		if depth >= maxDepth {
			if !retainAmbiguous {
				node.MakeLeaf(DefinitelyFalse)
			}
			return
		}
		if node.IsLeaf() {
			node.Split()
		}
		d := grid.Dimension()
		axis := depth % d
		lb, ub := latticeBox.SplitAxis(axis)
		regionOpCheckerRec(node.Left(), lb, grid, depth+1, maxDepth, check, keepIfInside, retainAmbiguous)
		regionOpCheckerRec(node.Right(), ub, grid, depth+1, maxDepth, check, keepIfInside, retainAmbiguous)
		if node.Left().IsLeaf() && node.Right().IsLeaf() && node.Left().Enabled() == node.Right().Enabled() {
			node.MakeLeaf(node.Left().Enabled())
		}
	}
}

// regionOpChecker is the SetChecker-driven counterpart of regionOp. It
// takes an explicit accuracy parameter, converted to a tree depth via
// ZeroCellSubdivisionsToTreeSubdivisions, since a generic predicate
// carries no tree of its own to measure a current depth from.
func (s *GridTreeSet) regionOpChecker(check SetChecker, accuracy int, keepIfInside, retainAmbiguous bool) {
	d := s.rootCell.grid.Dimension()
	maxDepth := ZeroCellSubdivisionsToTreeSubdivisions(accuracy, s.rootCell.height, d)
	latticeBox := s.rootCell.ComputeLatticeBox()
	regionOpCheckerRec(s.root, latticeBox, s.rootCell.grid, 0, maxDepth, check, keepIfInside, retainAmbiguous)
	s.bumpGeneration()
}

// OuterRestrictChecker keeps every leaf not definitely outside the checker's region.
func (s *GridTreeSet) OuterRestrictChecker(check SetChecker, accuracy int) {
	s.regionOpChecker(check, accuracy, true, true)
}

// InnerRestrictChecker keeps only leaves definitely inside the checker's region.
func (s *GridTreeSet) InnerRestrictChecker(check SetChecker, accuracy int) {
	s.regionOpChecker(check, accuracy, true, false)
}

// OuterRemoveChecker keeps every leaf not definitely inside the checker's region.
func (s *GridTreeSet) OuterRemoveChecker(check SetChecker, accuracy int) {
	s.regionOpChecker(check, accuracy, false, true)
}

// InnerRemoveChecker keeps only leaves definitely outside the checker's region.
func (s *GridTreeSet) InnerRemoveChecker(check SetChecker, accuracy int) {
	s.regionOpChecker(check, accuracy, false, false)
}
