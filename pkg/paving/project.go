package paving

// projectWord filters a full-resolution word (d-dimensional cyclic
// bisection path) down to the axes named by indices, in the order
// given. Bits are taken one primary-cell cycle (d bits) at a time; a
// partial trailing cycle shorter than the deepest requested index is
// simply not projected past its end.
func projectWord(word BinaryWord, d int, indices []int) BinaryWord {
	out := make(BinaryWord, 0, len(word))
	for base := 0; base < len(word); base += d {
	cycle:
		for _, idx := range indices {
			pos := base + idx
			if pos >= len(word) {
				break cycle
			}
			out = append(out, word[pos])
		}
	}
	return out
}

// ProjectDown returns the paving obtained by dropping every axis of
// set not named in indices, preserving indices' order as the new
// paving's axis order (spec §4.5). Every enabled leaf of set is
// projected and adjoined independently, so the result may recombine
// coarser than set did along the dropped axes.
func ProjectDown(set GridTreeSubset, indices []int) *GridTreeSet {
	d := set.rootCell.grid.Dimension()
	projGrid := ProjectDownGrid(set.rootCell.grid, indices)
	result := NewGridTreeSet(projGrid)
	result.UpToPrimaryCell(set.rootCell.height)
	for _, cell := range set.Cells() {
		projWord := projectWord(cell.word, d, indices)
		result.Adjoin(NewGridCell(projGrid, set.rootCell.height, projWord))
	}
	result.Recombine()
	return result
}
