package paving

// Oracle interfaces consumed by the approximation driver (spec §6).
// Every method takes a Box and answers with three-valued logic; a
// Possibly result is data the driver branches and refines on, never
// an error and never treated as DefinitelyFalse.

// BoundedSet is any set with a known finite bounding box.
type BoundedSet interface {
	BoundingBox() Box
}

// OvertSet answers whether it overlaps a given box.
type OvertSet interface {
	Overlaps(box Box) Tribool
}

// OpenSet is an OvertSet that can also answer whether it covers a box.
type OpenSet interface {
	OvertSet
	Covers(box Box) Tribool
}

// ClosedSet answers whether it is disjoint from a given box.
type ClosedSet interface {
	Disjoint(box Box) Tribool
}

// CompactSet is bounded and closed.
type CompactSet interface {
	BoundedSet
	ClosedSet
}

// LocatedSet is compact and overt.
type LocatedSet interface {
	CompactSet
	OvertSet
}

// RegularSet is open and closed.
type RegularSet interface {
	OpenSet
	ClosedSet
}

// SetChecker is a generic box predicate, used by the *_restrict /
// *_remove variants driven by arbitrary predicates rather than by a
// fixed oracle shape.
type SetChecker interface {
	Check(box Box) Tribool
}

// CachingClosedSet is the capability-based replacement (spec §9) for
// the original's runtime type introspection around expensive oracles:
// a ClosedSet that can additionally answer Disjoint using a
// caller-supplied cache, rather than specializing on the oracle's
// concrete type. Implementing it is optional; the approximation driver
// does not call DisjointWithCache and always uses plain Disjoint.
type CachingClosedSet interface {
	ClosedSet
	DisjointWithCache(box Box, cache any) Tribool
}

// boxBoundedSet adapts a plain Box to BoundedSet, used when the
// approximation driver is asked to approximate a box itself (spec
// §4.5 "AdjoinOverApproximation") rather than an arbitrary oracle.
type boxBoundedSet struct{ box Box }

func (b boxBoundedSet) BoundingBox() Box      { return b.box }
func (b boxBoundedSet) Overlaps(o Box) Tribool { return FromBool(b.box.Overlaps(o)) }
func (b boxBoundedSet) Covers(o Box) Tribool   { return FromBool(b.box.Covers(o)) }
func (b boxBoundedSet) Disjoint(o Box) Tribool { return FromBool(b.box.Disjoint(o)) }

var (
	_ LocatedSet = boxBoundedSet{}
	_ RegularSet = boxBoundedSet{}
)
