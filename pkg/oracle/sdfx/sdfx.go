// Package sdfx adapts github.com/deadsy/sdfx signed-distance solids
// into paving oracle interfaces, so an AdjoinOuterApproximation/
// AdjoinInnerApproximation pass can refine against a curved CSG solid
// instead of only boxes.
package sdfx

import (
	"math"

	"github.com/chazu/paving/pkg/paving"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Solid wraps an sdf.SDF3 as a paving.CompactSet/paving.RegularSet: a
// sound but conservative tribool oracle that samples the SDF at a
// box's corners and center and compares the sampled values against the
// box's half-diagonal, rather than trying to bound the SDF's Lipschitz
// constant exactly.
type Solid struct {
	s sdf.SDF3
}

// Wrap adapts an sdf.SDF3 into a Solid oracle.
func Wrap(s sdf.SDF3) *Solid { return &Solid{s: s} }

// Unwrap returns the underlying sdf.SDF3, for passing into further
// sdfx combinators.
func (s *Solid) Unwrap() sdf.SDF3 { return s.s }

// Union returns the union of two solids.
func Union(a, b *Solid) *Solid { return &Solid{s: sdf.Union3D(a.s, b.s)} }

// Difference returns a minus b.
func Difference(a, b *Solid) *Solid { return &Solid{s: sdf.Difference3D(a.s, b.s)} }

// Intersection returns the intersection of two solids.
func Intersection(a, b *Solid) *Solid { return &Solid{s: sdf.Intersect3D(a.s, b.s)} }

// BoundingBox satisfies paving.BoundedSet.
func (s *Solid) BoundingBox() paving.Box {
	bb := s.s.BoundingBox()
	return paving.NewBox(
		paving.Interval{Lower: bb.Min.X, Upper: bb.Max.X},
		paving.Interval{Lower: bb.Min.Y, Upper: bb.Max.Y},
		paving.Interval{Lower: bb.Min.Z, Upper: bb.Max.Z},
	)
}

// sampleCorners enumerates box's 2^d corners plus its center.
func sampleCorners(box paving.Box) []v3.Vec {
	d := box.Dimension()
	n := 1 << d
	out := make([]v3.Vec, 0, n+1)
	for mask := 0; mask < n; mask++ {
		var v [3]float64
		for axis := 0; axis < d; axis++ {
			ax := box.Axis(axis)
			if mask&(1<<axis) != 0 {
				v[axis] = ax.Upper
			} else {
				v[axis] = ax.Lower
			}
		}
		out = append(out, v3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
	var c [3]float64
	for axis := 0; axis < d; axis++ {
		c[axis] = box.Axis(axis).Midpoint()
	}
	out = append(out, v3.Vec{X: c[0], Y: c[1], Z: c[2]})
	return out
}

// halfDiagonal returns half the length of box's space diagonal, the
// conservative margin sampleCorners' corner distances are compared
// against.
func halfDiagonal(box paving.Box) float64 {
	sumSq := 0.0
	for i := 0; i < box.Dimension(); i++ {
		w := box.Axis(i).Width() / 2
		sumSq += w * w
	}
	return math.Sqrt(sumSq)
}

// Disjoint satisfies paving.ClosedSet: definitely true only when every
// sampled point lies farther outside the solid than box's half-
// diagonal (so no part of box can reach the surface); definitely false
// when some sampled point is farther inside than the half-diagonal.
func (s *Solid) Disjoint(box paving.Box) paving.Tribool {
	hd := halfDiagonal(box)
	allOutside := true
	for _, c := range sampleCorners(box) {
		if s.s.Evaluate(c) <= hd {
			allOutside = false
			break
		}
	}
	if allOutside {
		return paving.DefinitelyTrue
	}
	for _, c := range sampleCorners(box) {
		if s.s.Evaluate(c) < -hd {
			return paving.DefinitelyFalse
		}
	}
	return paving.Possibly
}

// Overlaps satisfies paving.OvertSet; the dual of Disjoint.
func (s *Solid) Overlaps(box paving.Box) paving.Tribool { return paving.Not(s.Disjoint(box)) }

// Covers satisfies paving.OpenSet: definitely true only when every
// sampled point is farther inside than box's half-diagonal, i.e. box
// cannot poke outside the solid's surface anywhere.
func (s *Solid) Covers(box paving.Box) paving.Tribool {
	hd := halfDiagonal(box)
	for _, c := range sampleCorners(box) {
		if s.s.Evaluate(c) > -hd {
			return paving.Possibly
		}
	}
	return paving.DefinitelyTrue
}

var (
	_ paving.CompactSet = (*Solid)(nil)
	_ paving.RegularSet = (*Solid)(nil)
)
