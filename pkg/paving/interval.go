package paving

import "math"

// Interval is a closed real interval [Lower, Upper]. Arithmetic is
// outward-rounded: every operation widens rather than narrows the
// result, so that interval containment is never lost to floating-point
// error. This is the "assumed available as a black box" component A
// from the spec; it is implemented here directly on float64 using
// math.Nextafter for the outward rounding step, since no example repo
// in the corpus carries a dedicated interval-arithmetic library.
type Interval struct {
	Lower, Upper float64
}

// NewInterval builds an interval, swapping bounds if given in the wrong order.
func NewInterval(lo, hi float64) Interval {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{Lower: lo, Upper: hi}
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Midpoint returns the interval's midpoint.
func (iv Interval) Midpoint() float64 { return (iv.Lower + iv.Upper) / 2 }

// Contains reports whether x lies within the closed interval.
func (iv Interval) Contains(x float64) bool { return x >= iv.Lower && x <= iv.Upper }

// Empty reports whether the interval has non-positive width.
func (iv Interval) Empty() bool { return iv.Upper <= iv.Lower }

// roundDown returns the nearest representable value <= x.
func roundDown(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }

// roundUp returns the nearest representable value >= x.
func roundUp(x float64) float64 { return math.Nextafter(x, math.Inf(1)) }

// Add returns the outward-rounded sum of two intervals.
func (iv Interval) Add(other Interval) Interval {
	return Interval{
		Lower: roundDown(iv.Lower + other.Lower),
		Upper: roundUp(iv.Upper + other.Upper),
	}
}

// AddScalar returns the outward-rounded sum of the interval and a scalar.
func (iv Interval) AddScalar(x float64) Interval {
	return Interval{Lower: roundDown(iv.Lower + x), Upper: roundUp(iv.Upper + x)}
}

// MulScalar returns the outward-rounded product of the interval and a
// non-negative scalar. Grid lengths are always positive, so this is
// the only scalar multiplication the engine needs.
func (iv Interval) MulScalar(x float64) Interval {
	if x < 0 {
		return Interval{Lower: roundDown(iv.Upper * x), Upper: roundUp(iv.Lower * x)}
	}
	return Interval{Lower: roundDown(iv.Lower * x), Upper: roundUp(iv.Upper * x)}
}

// Overlaps reports whether two intervals share any point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Lower <= other.Upper && other.Lower <= iv.Upper
}

// Subset reports whether iv is entirely contained in other.
func (iv Interval) Subset(other Interval) bool {
	return other.Lower <= iv.Lower && iv.Upper <= other.Upper
}

// Disjoint reports whether the two intervals share no point.
func (iv Interval) Disjoint(other Interval) bool { return !iv.Overlaps(other) }

// Hull returns the smallest interval containing both operands.
func (iv Interval) Hull(other Interval) Interval {
	return Interval{Lower: math.Min(iv.Lower, other.Lower), Upper: math.Max(iv.Upper, other.Upper)}
}

// SplitLower returns the lower half [Lower, mid].
func (iv Interval) SplitLower() Interval { return Interval{Lower: iv.Lower, Upper: iv.Midpoint()} }

// SplitUpper returns the upper half [mid, Upper].
func (iv Interval) SplitUpper() Interval { return Interval{Lower: iv.Midpoint(), Upper: iv.Upper} }
