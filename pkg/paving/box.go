package paving

// Box is the Cartesian product of one Interval per dimension. This is
// component B of the spec — assumed available, implemented directly
// on top of Interval.
type Box struct {
	intervals []Interval
}

// NewBox builds a box from per-axis intervals.
func NewBox(intervals ...Interval) Box {
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	return Box{intervals: cp}
}

// Dimension returns the number of axes.
func (b Box) Dimension() int { return len(b.intervals) }

// Axis returns the interval on the given axis.
func (b Box) Axis(i int) Interval { return b.intervals[i] }

// Intervals returns a copy of the box's per-axis intervals.
func (b Box) Intervals() []Interval {
	cp := make([]Interval, len(b.intervals))
	copy(cp, b.intervals)
	return cp
}

// Empty reports whether any axis has non-positive width.
func (b Box) Empty() bool {
	for _, iv := range b.intervals {
		if iv.Empty() {
			return true
		}
	}
	return false
}

// Measure returns the product of the widths of all axes (area/volume/hypervolume).
func (b Box) Measure() float64 {
	m := 1.0
	for _, iv := range b.intervals {
		m *= iv.Width()
	}
	return m
}

// Overlaps reports whether two boxes of equal dimension share any point.
func (b Box) Overlaps(other Box) bool {
	for i := range b.intervals {
		if !b.intervals[i].Overlaps(other.intervals[i]) {
			return false
		}
	}
	return true
}

// Disjoint reports whether the two boxes share no point.
func (b Box) Disjoint(other Box) bool { return !b.Overlaps(other) }

// Subset reports whether b is entirely contained in other.
func (b Box) Subset(other Box) bool {
	for i := range b.intervals {
		if !b.intervals[i].Subset(other.intervals[i]) {
			return false
		}
	}
	return true
}

// Covers reports whether other is entirely contained in b. This is the
// mirror of Subset with the receivers swapped, kept as a distinct
// method since the approximation driver names both directions.
func (b Box) Covers(other Box) bool { return other.Subset(b) }

// Hull returns the smallest box containing both operands.
func (b Box) Hull(other Box) Box {
	out := make([]Interval, len(b.intervals))
	for i := range b.intervals {
		out[i] = b.intervals[i].Hull(other.intervals[i])
	}
	return Box{intervals: out}
}

// SplitAxis bisects the box along the given axis, returning the lower
// and upper halves.
func (b Box) SplitAxis(axis int) (lower, upper Box) {
	lowerIvs := make([]Interval, len(b.intervals))
	upperIvs := make([]Interval, len(b.intervals))
	copy(lowerIvs, b.intervals)
	copy(upperIvs, b.intervals)
	lowerIvs[axis] = b.intervals[axis].SplitLower()
	upperIvs[axis] = b.intervals[axis].SplitUpper()
	return Box{intervals: lowerIvs}, Box{intervals: upperIvs}
}
