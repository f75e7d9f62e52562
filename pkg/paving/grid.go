package paving

// Grid is an affine map between integer lattice coordinates and real
// coordinates: an origin vector plus a per-dimension length vector.
// Grids compare by value (§4.1).
type Grid struct {
	origin  []float64
	lengths []float64
}

// NewGrid builds a grid from an origin and per-axis lengths. Lengths
// must all be strictly positive; callers violating this get undefined
// primary-cell behavior, matching the spec's "assumed" invariant on
// component A/B arithmetic.
func NewGrid(origin, lengths []float64) Grid {
	o := make([]float64, len(origin))
	l := make([]float64, len(lengths))
	copy(o, origin)
	copy(l, lengths)
	return Grid{origin: o, lengths: l}
}

// UnitGrid returns the d-dimensional grid with origin 0 and unit lengths.
func UnitGrid(d int) Grid {
	origin := make([]float64, d)
	lengths := make([]float64, d)
	for i := range lengths {
		lengths[i] = 1
	}
	return Grid{origin: origin, lengths: lengths}
}

// Dimension returns the grid's dimension.
func (g Grid) Dimension() int { return len(g.origin) }

// Origin returns the grid's origin vector.
func (g Grid) Origin() []float64 {
	out := make([]float64, len(g.origin))
	copy(out, g.origin)
	return out
}

// Lengths returns the grid's per-axis lengths.
func (g Grid) Lengths() []float64 {
	out := make([]float64, len(g.lengths))
	copy(out, g.lengths)
	return out
}

// Equal tests value equality of origin and lengths.
func (g Grid) Equal(other Grid) bool {
	if len(g.origin) != len(other.origin) {
		return false
	}
	for i := range g.origin {
		if g.origin[i] != other.origin[i] || g.lengths[i] != other.lengths[i] {
			return false
		}
	}
	return true
}

// Coordinate maps a dyadic lattice coordinate x on axis i to a real coordinate.
func (g Grid) Coordinate(i int, x float64) float64 {
	return g.origin[i] + x*g.lengths[i]
}

// SubdivisionIndex inverts Coordinate, returning the lattice coordinate
// whose real value is y, without rounding.
func (g Grid) SubdivisionIndex(i int, y float64) float64 {
	return (y - g.origin[i]) / g.lengths[i]
}

// SubdivisionLowerIndex returns the inverse map rounded outward
// (downward), used when y is the lower endpoint of a real interval
// being mapped into lattice coordinates.
func (g Grid) SubdivisionLowerIndex(i int, y float64) float64 {
	return roundDown(g.SubdivisionIndex(i, y))
}

// SubdivisionUpperIndex returns the inverse map rounded outward
// (upward), used when y is the upper endpoint of a real interval.
func (g Grid) SubdivisionUpperIndex(i int, y float64) float64 {
	return roundUp(g.SubdivisionIndex(i, y))
}

// ToLatticeBox maps a real-space Box into lattice coordinates with
// outward (conservative) rounding: the lattice box is never smaller
// than the true image of the real box.
func (g Grid) ToLatticeBox(box Box) Box {
	ivs := make([]Interval, g.Dimension())
	for i := 0; i < g.Dimension(); i++ {
		ax := box.Axis(i)
		ivs[i] = Interval{
			Lower: g.SubdivisionLowerIndex(i, ax.Lower),
			Upper: g.SubdivisionUpperIndex(i, ax.Upper),
		}
	}
	return NewBox(ivs...)
}

// ToRealBox maps a lattice-coordinate Box to real space through the grid.
func (g Grid) ToRealBox(latticeBox Box) Box {
	ivs := make([]Interval, g.Dimension())
	for i := 0; i < g.Dimension(); i++ {
		ax := latticeBox.Axis(i)
		ivs[i] = Interval{
			Lower: g.Coordinate(i, ax.Lower),
			Upper: g.Coordinate(i, ax.Upper),
		}
	}
	return NewBox(ivs...)
}

// ProjectDownGrid returns the grid restricted to the given axis indices,
// preserving their order.
func ProjectDownGrid(g Grid, indices []int) Grid {
	origin := make([]float64, len(indices))
	lengths := make([]float64, len(indices))
	for i, idx := range indices {
		origin[i] = g.origin[idx]
		lengths[i] = g.lengths[idx]
	}
	return Grid{origin: origin, lengths: lengths}
}
