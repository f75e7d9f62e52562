package paving

// GridTreeSubset is (root cell, borrowed tree root). The set it
// denotes is the union of the real-space boxes of the enabled leaves;
// a leaf's word is rootCell.Word() followed by the path from the tree
// root to that leaf. A GridTreeSubset does not own its tree root — it
// borrows it from a GridTreeSet (or from another subset derived from
// one). Per spec §9: mutating the underlying set invalidates any
// iterator taken from a subset of it.
type GridTreeSubset struct {
	rootCell GridCell
	root     *BinaryTreeNode
}

// Cell returns the subset's root cell.
func (s GridTreeSubset) Cell() GridCell { return s.rootCell }

// Grid returns the grid of the underlying paving.
func (s GridTreeSubset) Grid() Grid { return s.rootCell.Grid() }

// Depth returns the depth of the borrowed tree below its root.
func (s GridTreeSubset) Depth() int { return s.root.Depth() }

// Empty reports whether no leaf in the subset is enabled.
func (s GridTreeSubset) Empty() bool { return !s.root.HasEnabled() }

// Size returns the number of enabled leaves.
func (s GridTreeSubset) Size() int {
	n := 0
	s.walkEnabled(func(GridCell) { n++ })
	return n
}

// Measure returns the sum of Box().Measure() over all enabled leaves.
func (s GridTreeSubset) Measure() float64 {
	total := 0.0
	s.walkEnabled(func(c GridCell) { total += c.Box().Measure() })
	return total
}

// walkEnabled visits every enabled leaf's cell in left-first
// depth-first order.
func (s GridTreeSubset) walkEnabled(visit func(GridCell)) {
	var rec func(node *BinaryTreeNode, word BinaryWord)
	rec = func(node *BinaryTreeNode, word BinaryWord) {
		if node.IsLeaf() {
			if node.IsEnabledLeaf() {
				visit(GridCell{grid: s.rootCell.grid, height: s.rootCell.height, word: s.rootCell.word.Concat(word)})
			}
			return
		}
		rec(node.Left(), word.Push(false))
		rec(node.Right(), word.Push(true))
	}
	rec(s.root, BinaryWord{})
}

// Cells returns every enabled leaf's cell, in left-first depth-first
// order. It is a convenience snapshot; use NewCellIterator for
// generation-checked incremental iteration over a live GridTreeSet.
func (s GridTreeSubset) Cells() []GridCell {
	var out []GridCell
	s.walkEnabled(func(c GridCell) { out = append(out, c) })
	return out
}

// --- Predicates vs. Box (three-valued, recursive descent, short-circuiting on definite answers) ---

// Covers reports whether the subset's denoted set covers box.
func (s GridTreeSubset) Covers(box Box) Tribool {
	if !s.rootCell.Box().Covers(box) {
		return DefinitelyFalse
	}
	return coversRec(s.root, s.rootCell.ComputeLatticeBox(), s.rootCell.grid, len(s.rootCell.word), box)
}

func coversRec(node *BinaryTreeNode, latticeBox Box, grid Grid, depth int, box Box) Tribool {
	cellBox := grid.ToRealBox(latticeBox)
	if node.IsDisabledLeaf() {
		if cellBox.Disjoint(box) {
			return DefinitelyTrue
		}
		// A box with a non-empty interior that only touches this cell
		// along its boundary is covered there by the neighboring cells.
		if !box.Empty() {
			for i := 0; i < box.Dimension(); i++ {
				if box.Axis(i).Upper <= cellBox.Axis(i).Lower || cellBox.Axis(i).Upper <= box.Axis(i).Lower {
					return DefinitelyTrue
				}
			}
		}
		return DefinitelyFalse
	}
	if node.IsEnabledLeaf() {
		return DefinitelyTrue
	}
	if node.IsIndeterminateLeaf() {
		return Possibly
	}
	d := grid.Dimension()
	axis := depth % d
	lb, ub := latticeBox.SplitAxis(axis)
	left := coversRec(node.Left(), lb, grid, depth+1, box)
	right := coversRec(node.Right(), ub, grid, depth+1, box)
	return And(left, right)
}

// Subset reports whether box is a subset of the set denoted by s.
func (s GridTreeSubset) Subset(box Box) Tribool { return s.Covers(box) }

// Overlaps reports whether the subset's denoted set overlaps box.
func (s GridTreeSubset) Overlaps(box Box) Tribool {
	return overlapsRec(s.root, s.rootCell.ComputeLatticeBox(), s.rootCell.grid, len(s.rootCell.word), box)
}

func overlapsRec(node *BinaryTreeNode, latticeBox Box, grid Grid, depth int, box Box) Tribool {
	cellBox := grid.ToRealBox(latticeBox)
	if cellBox.Disjoint(box) {
		return DefinitelyFalse
	}
	if node.IsDisabledLeaf() {
		return DefinitelyFalse
	}
	if node.IsEnabledLeaf() {
		return DefinitelyTrue
	}
	if node.IsIndeterminateLeaf() {
		return Possibly
	}
	d := grid.Dimension()
	axis := depth % d
	lb, ub := latticeBox.SplitAxis(axis)
	left := overlapsRec(node.Left(), lb, grid, depth+1, box)
	right := overlapsRec(node.Right(), ub, grid, depth+1, box)
	return Or(left, right)
}

// Disjoint reports whether the subset's denoted set and box share no point.
func (s GridTreeSubset) Disjoint(box Box) Tribool { return Not(s.Overlaps(box)) }

// Subdivide minces the subset so that every enabled leaf's box has
// width <= maxWidth on every axis. Each axis's halving count is
// converted into the tree depth at which that axis has been bisected
// that many times (axes are bisected cyclically, continuing from the
// root cell's word), and the tree is minced to the deepest of these.
func (s *GridTreeSubset) Subdivide(maxWidth float64) {
	d := s.rootCell.grid.Dimension()
	baseBox := s.rootCell.Box()
	offset := len(s.rootCell.word) % d
	depth := 0
	for i := 0; i < d; i++ {
		width := baseBox.Axis(i).Width()
		n := 0
		for width > maxWidth {
			width /= 2
			n++
		}
		if n == 0 {
			continue
		}
		if need := (i-offset+d)%d + (n-1)*d + 1; need > depth {
			depth = need
		}
	}
	s.root.Mince(depth)
}

// --- Predicates vs. another GridTreeSubset (exact boolean: both operands are concrete pavings) ---

// commonPrimaryCellPath returns the path from the taller of the two
// heights down to each subset's own root height, so both roots can be
// located from a shared ancestor primary cell.
func commonPrimaryCellPath(a, b GridTreeSubset) (topHeight int, pathA, pathB BinaryWord) {
	d := a.rootCell.grid.Dimension()
	topHeight = a.rootCell.height
	if b.rootCell.height > topHeight {
		topHeight = b.rootCell.height
	}
	pathA = PrimaryCellPath(d, topHeight, a.rootCell.height).Concat(a.rootCell.word)
	pathB = PrimaryCellPath(d, topHeight, b.rootCell.height).Concat(b.rootCell.word)
	return
}

// locateNode walks path from root and returns the node it reaches,
// stopping early at the first leaf on the way. It never splits, so
// predicate alignment leaves both trees unchanged.
func locateNode(root *BinaryTreeNode, path BinaryWord) *BinaryTreeNode {
	cur := root
	for _, bit := range path {
		if cur.IsLeaf() {
			return cur
		}
		if bit {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
	}
	return cur
}

// alignPair locates both subsets under their common primary cell
// ancestor without mutating either tree, returning the two aligned
// node references (possibly mid-subtree leaves, since locateNode never
// splits). When one path is a strict prefix of the other under the
// common ancestor, the two subsets are nested rather than positioned
// at equal depth; alignPair reports this via the returned bool.
func alignPair(a, b GridTreeSubset) (nodeA, nodeB *BinaryTreeNode, aligned bool) {
	_, pathA, pathB := commonPrimaryCellPath(a, b)
	switch {
	case pathA.IsPrefixOf(pathB):
		nodeA = a.root
		nodeB = locateNode(b.root, pathB[len(pathA):])
		return nodeA, nodeB, true
	case pathB.IsPrefixOf(pathA):
		nodeA = locateNode(a.root, pathA[len(pathB):])
		nodeB = b.root
		return nodeA, nodeB, true
	default:
		return nil, nil, false
	}
}

// Subset reports whether a's denoted set is a subset of b's.
func Subset(a, b GridTreeSubset) bool {
	nodeA, nodeB, aligned := alignPair(a, b)
	if !aligned {
		return !a.root.HasEnabled()
	}
	return SubsetTree(nodeA, nodeB)
}

// Superset reports whether a's denoted set is a superset of b's.
func Superset(a, b GridTreeSubset) bool { return Subset(b, a) }

// Overlap reports whether a's and b's denoted sets share any point.
func Overlap(a, b GridTreeSubset) bool {
	nodeA, nodeB, aligned := alignPair(a, b)
	if !aligned {
		return false
	}
	return OverlapTree(nodeA, nodeB)
}

// Disjoint reports whether a's and b's denoted sets share no point.
func Disjoint(a, b GridTreeSubset) bool { return !Overlap(a, b) }
