package paving

// Join, Intersection, and Difference (spec §4.5's "Friends" functions)
// each build a fresh GridTreeSet on a's grid, aligned to the taller of
// a's and b's primary-cell heights, and combine the two operands via
// Adjoin plus the matching restrict/remove primitive. Both operands
// must share a grid; mismatched grids are reported rather than
// silently producing a meaningless result.

func combinedHeight(a, b GridTreeSubset) int {
	h := a.rootCell.height
	if b.rootCell.height > h {
		h = b.rootCell.height
	}
	return h
}

// Join returns a ∪ b as a new GridTreeSet.
func Join(a, b GridTreeSubset) (*GridTreeSet, error) {
	if !a.rootCell.grid.Equal(b.rootCell.grid) {
		return nil, gridMismatchf("Join operands are defined on different grids")
	}
	result := NewGridTreeSet(a.rootCell.grid)
	result.UpToPrimaryCell(combinedHeight(a, b))
	result.AdjoinSubset(a)
	result.AdjoinSubset(b)
	return result, nil
}

// Intersection returns a ∩ b as a new GridTreeSet.
func Intersection(a, b GridTreeSubset) (*GridTreeSet, error) {
	if !a.rootCell.grid.Equal(b.rootCell.grid) {
		return nil, gridMismatchf("Intersection operands are defined on different grids")
	}
	result := NewGridTreeSet(a.rootCell.grid)
	result.UpToPrimaryCell(combinedHeight(a, b))
	result.AdjoinSubset(a)
	result.RestrictSubset(b)
	return result, nil
}

// Difference returns a \ b as a new GridTreeSet.
func Difference(a, b GridTreeSubset) (*GridTreeSet, error) {
	if !a.rootCell.grid.Equal(b.rootCell.grid) {
		return nil, gridMismatchf("Difference operands are defined on different grids")
	}
	result := NewGridTreeSet(a.rootCell.grid)
	result.UpToPrimaryCell(combinedHeight(a, b))
	result.AdjoinSubset(a)
	result.RemoveSubset(b)
	return result, nil
}
