package paving

// GridCell is (Grid, primary-cell height, path word). It names one
// cell in the infinite dyadic paving of a grid: start from the
// primary cell at Height, then for i = 0..len(Word)-1 bisect along
// axis i mod Dimension, taking the lower half if Word[i]=false else
// the upper half.
type GridCell struct {
	grid   Grid
	height int
	word   BinaryWord
}

// NewGridCell builds a cell from its components.
func NewGridCell(grid Grid, height int, word BinaryWord) GridCell {
	return GridCell{grid: grid, height: height, word: word.Clone()}
}

func (c GridCell) Grid() Grid       { return c.grid }
func (c GridCell) Height() int      { return c.height }
func (c GridCell) Word() BinaryWord { return c.word.Clone() }

// ComputeLatticeBox returns the cell's box in lattice coordinates
// (exact dyadic rationals, since every operation is a midpoint split
// of an interval with dyadic-rational endpoints starting from (0,1)).
func (c GridCell) ComputeLatticeBox() Box {
	d := c.grid.Dimension()
	box := PrimaryCellLatticeBox(c.height, d)
	for i, bit := range c.word {
		axis := i % d
		lowerHalf, upperHalf := box.Axis(axis).SplitLower(), box.Axis(axis).SplitUpper()
		ivs := box.Intervals()
		if bit {
			ivs[axis] = upperHalf
		} else {
			ivs[axis] = lowerHalf
		}
		box = NewBox(ivs...)
	}
	return box
}

// Box returns the cell's real-space box.
func (c GridCell) Box() Box { return c.grid.ToRealBox(c.ComputeLatticeBox()) }

// Interior returns the GridOpenCell denoting this cell's topological
// interior, represented by appending Dimension false-bits (one step of
// "no further positive extension") to the word and reusing the
// already-computed box, mirroring the original's caching shortcut.
func (c GridCell) Interior() GridOpenCell {
	d := c.grid.Dimension()
	extended := c.word.Clone()
	for i := 0; i < d; i++ {
		extended = extended.Push(false)
	}
	return GridOpenCell{grid: c.grid, height: c.height, word: extended, box: c.Box(), boxValid: true}
}

// SmallestEnclosingPrimaryCell returns the GridCell at the smallest
// primary-cell height whose box contains box (word is empty: the
// answer is a bare primary cell).
func SmallestEnclosingPrimaryCell(box Box, grid Grid) GridCell {
	latticeBox := grid.ToLatticeBox(box)
	h := SmallestEnclosingPrimaryCellHeight(latticeBox)
	return GridCell{grid: grid, height: h, word: BinaryWord{}}
}

// NeighboringCell returns the lattice-adjacent cell in the positive
// direction of axis dim. It is the critical bounded-reverse-scan
// algorithm discussed in spec §9: find the last false bit belonging to
// axis dim in the (possibly re-rooted) word, and invert the suffix of
// bits on that axis from there to the end. If no such bit exists, the
// primary cell is extended one level at a time (re-rooting the word)
// until one does — this never relies on unsigned wraparound, unlike
// the original's position-- loop.
func (c GridCell) NeighboringCell(dim int) GridCell {
	d := c.grid.Dimension()
	height := c.height
	word := c.word.Clone()

	latticeBox := c.ComputeLatticeBox()
	extendedUpper := latticeBox.Axis(dim).Upper + latticeBox.Axis(dim).Width()/2

	for PrimaryCellLatticeBox(height, d).Axis(dim).Upper < extendedUpper {
		height++
	}
	if height > c.height {
		prefix := PrimaryCellPath(d, height, c.height)
		word = prefix.Concat(word)
	}

	for {
		pos := lastFalseOnAxis(word, d, dim)
		if pos >= 0 {
			for i := pos; i < len(word); i++ {
				if i%d == dim {
					word[i] = !word[i]
				}
			}
			return GridCell{grid: c.grid, height: height, word: word}
		}
		// No false bit on this axis anywhere in the word: every
		// subcell along this axis is already the upper half all the
		// way up. Extend one more primary-cell level and retry.
		oldHeight := height
		height++
		prefix := PrimaryCellPath(d, height, oldHeight)
		word = prefix.Concat(word)
	}
}

// NeighboringCellMulti generalizes NeighboringCell to a set of axes at
// once: for each flagged axis it locates the last false bit (after
// re-rooting, if needed, to a height tall enough for every flagged
// axis simultaneously), then inverts every bit on a flagged axis from
// the smallest such position to the end of the word. With no axis
// flagged it returns c unchanged — this is what lets a single
// enumeration of all 2^d flag combinations include the cell itself
// (all-false) alongside every shared-face/edge/corner neighbor.
func (c GridCell) NeighboringCellMulti(flags []bool) GridCell {
	anyFlag := false
	for _, f := range flags {
		anyFlag = anyFlag || f
	}
	if !anyFlag {
		return c
	}

	d := c.grid.Dimension()
	height := c.height
	word := c.word.Clone()
	latticeBox := c.ComputeLatticeBox()

	requiredHeight := height
	for axis, flag := range flags {
		if !flag {
			continue
		}
		extendedUpper := latticeBox.Axis(axis).Upper + latticeBox.Axis(axis).Width()/2
		h := requiredHeight
		for PrimaryCellLatticeBox(h, d).Axis(axis).Upper < extendedUpper {
			h++
		}
		if h > requiredHeight {
			requiredHeight = h
		}
	}
	if requiredHeight > height {
		word = PrimaryCellPath(d, requiredHeight, height).Concat(word)
		height = requiredHeight
	}

	for {
		invertPos := make([]int, d)
		minPos := -1
		allFound := true
		for axis, flag := range flags {
			if !flag {
				invertPos[axis] = -1
				continue
			}
			p := lastFalseOnAxis(word, d, axis)
			invertPos[axis] = p
			if p < 0 {
				allFound = false
			} else if minPos == -1 || p < minPos {
				minPos = p
			}
		}
		if allFound {
			for i := minPos; i < len(word); i++ {
				axis := i % d
				if flags[axis] && i >= invertPos[axis] {
					word[i] = !word[i]
				}
			}
			return GridCell{grid: c.grid, height: height, word: word}
		}
		oldHeight := height
		height++
		word = PrimaryCellPath(d, height, oldHeight).Concat(word)
	}
}

// lastFalseOnAxis returns the highest index p in word such that
// p % d == axis and word[p] == false, or -1 if none exists. It is a
// bounded reverse scan using a signed loop variable, never an unsigned
// decrement past zero.
func lastFalseOnAxis(word BinaryWord, d, axis int) int {
	for p := len(word) - 1; p >= 0; p-- {
		if p%d == axis && !word[p] {
			return p
		}
	}
	return -1
}
