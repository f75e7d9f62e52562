package paving

// PrimaryCellLatticeBox returns the lattice box of the primary cell at
// the given height, for a grid of the given dimension. Per spec §3:
// (L0,R0) = (0,1); odd heights double downward, even heights double
// upward, so every bounded box is eventually enclosed.
func PrimaryCellLatticeBox(height, dimension int) Box {
	lo, hi := 0.0, 1.0
	for h := 1; h <= height; h++ {
		width := hi - lo
		if h%2 != 0 {
			lo = lo - width
		} else {
			hi = hi + width
		}
	}
	ivs := make([]Interval, dimension)
	for i := range ivs {
		ivs[i] = Interval{Lower: lo, Upper: hi}
	}
	return NewBox(ivs...)
}

// SmallestEnclosingPrimaryCellHeight returns the smallest height h such
// that latticeBox is a subset of the primary cell at height h.
func SmallestEnclosingPrimaryCellHeight(latticeBox Box) int {
	d := latticeBox.Dimension()
	for h := 0; ; h++ {
		if latticeBox.Subset(PrimaryCellLatticeBox(h, d)) {
			return h
		}
	}
}

// PrimaryCellPath returns the word of length d*(hTop-hBottom) that
// descends from the primary cell at hTop to the primary cell at
// hBottom. Each group of d bits is all-false (even step) or all-true
// (odd step), matching the alternation of primary-cell growth.
func PrimaryCellPath(dimension, hTop, hBottom int) BinaryWord {
	if hTop <= hBottom {
		return BinaryWord{}
	}
	word := make(BinaryWord, 0, dimension*(hTop-hBottom))
	for h := hTop; h > hBottom; h-- {
		bit := h%2 != 0
		for i := 0; i < dimension; i++ {
			word = append(word, bit)
		}
	}
	return word
}
