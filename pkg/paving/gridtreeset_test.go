package paving

import (
	"bytes"
	"testing"
)

func unitGrid2D() Grid { return UnitGrid(2) }

// Scenario 1: unit grid, height 0, single cell.
func TestScenarioSingleCellMeasure(t *testing.T) {
	s := NewGridTreeSet(unitGrid2D())
	s.Adjoin(NewGridCell(unitGrid2D(), 0, NewBinaryWord(false, false)))

	if got := s.Measure(); got != 0.25 {
		t.Fatalf("Measure() = %v, want 0.25", got)
	}
	cells := s.Cells()
	if len(cells) != 1 {
		t.Fatalf("got %d enabled cells, want 1", len(cells))
	}
	box := cells[0].Box()
	if box.Axis(0).Lower != 0 || box.Axis(0).Upper != 0.5 || box.Axis(1).Lower != 0 || box.Axis(1).Upper != 0.5 {
		t.Errorf("Box() = %v, want [0,0.5]x[0,0.5]", box.Intervals())
	}
}

// boxSet is a minimal CompactSet/RegularSet oracle wrapping a plain Box,
// used by the approximation scenarios below.
type boxSet struct{ box Box }

func (b boxSet) BoundingBox() Box       { return b.box }
func (b boxSet) Disjoint(o Box) Tribool { return FromBool(b.box.Disjoint(o)) }
func (b boxSet) Overlaps(o Box) Tribool { return FromBool(b.box.Overlaps(o)) }
func (b boxSet) Covers(o Box) Tribool   { return FromBool(b.box.Covers(o)) }

// Scenario 2: outer approximation of a diagonal box.
func TestScenarioOuterApproximationDiagonalBox(t *testing.T) {
	grid := unitGrid2D()
	target := NewBox(Interval{Lower: 0.3, Upper: 0.7}, Interval{Lower: 0.3, Upper: 0.7})
	set := boxSet{box: target}

	result := NewGridTreeSet(grid)
	if err := AdjoinOuterApproximation(result, set, 2); err != nil {
		t.Fatalf("AdjoinOuterApproximation: %v", err)
	}

	if result.Measure() > 1.0+1e-9 {
		t.Errorf("Measure() = %v, want <= 1.0", result.Measure())
	}
	if !Definitely(result.Covers(target)) {
		t.Error("outer approximation does not definitely cover its target box")
	}
}

// Scenario 3: re-rooting preserves denotation.
func TestScenarioReRooting(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))

	before := s.Measure()
	beforeCells := s.Cells()

	s.UpToPrimaryCell(2)

	if got := len(PrimaryCellPath(grid.Dimension(), 2, 0)); got != 2*grid.Dimension() {
		t.Errorf("prepended path length = %d, want %d", got, 2*grid.Dimension())
	}
	if got := s.Measure(); got != before {
		t.Errorf("Measure() after re-rooting = %v, want %v (unchanged)", got, before)
	}
	afterCells := s.Cells()
	if len(afterCells) != len(beforeCells) {
		t.Fatalf("got %d cells after re-rooting, want %d", len(afterCells), len(beforeCells))
	}
	beforeBox, afterBox := beforeCells[0].Box(), afterCells[0].Box()
	for i := 0; i < grid.Dimension(); i++ {
		if beforeBox.Axis(i) != afterBox.Axis(i) {
			t.Errorf("re-rooting changed axis %d: before %v, after %v", i, beforeBox.Axis(i), afterBox.Axis(i))
		}
	}
}

// Scenario 4: join/restrict of two halves reconstitutes the whole, and
// intersection contains only cells straddling the shared boundary.
func TestScenarioJoinRestrict(t *testing.T) {
	grid := unitGrid2D()
	leftHalf := boxSet{box: NewBox(Interval{Lower: 0, Upper: 0.5}, Interval{Lower: 0, Upper: 1})}
	rightHalf := boxSet{box: NewBox(Interval{Lower: 0.5, Upper: 1}, Interval{Lower: 0, Upper: 1})}
	whole := boxSet{box: NewBox(Interval{Lower: 0, Upper: 1}, Interval{Lower: 0, Upper: 1})}

	a := NewGridTreeSet(grid)
	if err := AdjoinOuterApproximation(a, leftHalf, 1); err != nil {
		t.Fatal(err)
	}
	b := NewGridTreeSet(grid)
	if err := AdjoinOuterApproximation(b, rightHalf, 1); err != nil {
		t.Fatal(err)
	}
	want := NewGridTreeSet(grid)
	if err := AdjoinOuterApproximation(want, whole, 1); err != nil {
		t.Fatal(err)
	}

	joined, err := Join(a.GridTreeSubset, b.GridTreeSubset)
	if err != nil {
		t.Fatal(err)
	}
	joined.Recombine()
	want.Recombine()

	if joined.Measure() != want.Measure() {
		t.Errorf("Join measure = %v, want %v", joined.Measure(), want.Measure())
	}

	inter, err := Intersection(a.GridTreeSubset, b.GridTreeSubset)
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range inter.Cells() {
		box := cell.Box()
		if !box.Axis(0).Contains(0.5) {
			t.Errorf("intersection cell %v does not touch axis-0 boundary 0.5", box.Intervals())
		}
	}
}

func TestJoinIsSuperset(t *testing.T) {
	grid := unitGrid2D()
	a := NewGridTreeSet(grid)
	a.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false, false)))
	b := NewGridTreeSet(grid)
	b.Adjoin(NewGridCell(grid, 0, NewBinaryWord(true, true)))

	joined, err := Join(a.GridTreeSubset, b.GridTreeSubset)
	if err != nil {
		t.Fatal(err)
	}
	if !Subset(a.GridTreeSubset, joined.GridTreeSubset) {
		t.Error("join(A,B) must be a superset of A")
	}
	if !Subset(b.GridTreeSubset, joined.GridTreeSubset) {
		t.Error("join(A,B) must be a superset of B")
	}
}

func TestIntersectionIsSubset(t *testing.T) {
	grid := unitGrid2D()
	a := NewGridTreeSet(grid)
	a.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))
	b := a.Clone()
	b.RemoveCell(NewGridCell(grid, 0, NewBinaryWord(true)))

	inter, err := Intersection(a.GridTreeSubset, b.GridTreeSubset)
	if err != nil {
		t.Fatal(err)
	}
	if !Subset(inter.GridTreeSubset, a.GridTreeSubset) {
		t.Error("intersection(A,B) must be a subset of A")
	}
}

func TestDifferenceOfSetWithItselfIsEmpty(t *testing.T) {
	grid := unitGrid2D()
	a := NewGridTreeSet(grid)
	a.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))

	diff, err := Difference(a.GridTreeSubset, a.GridTreeSubset)
	if err != nil {
		t.Fatal(err)
	}
	if !diff.Empty() {
		t.Error("difference(A, A) should be empty")
	}
}

func TestRestrictSelfIsUnchanged(t *testing.T) {
	grid := unitGrid2D()
	a := NewGridTreeSet(grid)
	a.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false)))
	before := a.Measure()

	a.RestrictSubset(a.Clone().GridTreeSubset)
	if a.Measure() != before {
		t.Errorf("restrict(A, A) changed the measure: got %v, want %v", a.Measure(), before)
	}
}

// Scenario 5: persistence round trip.
func TestScenarioPersistenceRoundTrip(t *testing.T) {
	grid := unitGrid2D()
	target := NewBox(Interval{Lower: 0.3, Upper: 0.7}, Interval{Lower: 0.3, Upper: 0.7})
	original := NewGridTreeSet(grid)
	if err := AdjoinOuterApproximation(original, boxSet{box: target}, 2); err != nil {
		t.Fatal(err)
	}
	original.Recombine()

	var buf bytes.Buffer
	if err := Export(original.GridTreeSubset, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	imported, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !Subset(original.GridTreeSubset, imported.GridTreeSubset) {
		t.Error("imported set is not a superset of the original")
	}
	if !Subset(imported.GridTreeSubset, original.GridTreeSubset) {
		t.Error("imported set is not a subset of the original")
	}
}

func TestSubsetOverlapDuality(t *testing.T) {
	grid := unitGrid2D()
	a := NewGridTreeSet(grid)
	a.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false)))
	b := NewGridTreeSet(grid)
	b.Adjoin(NewGridCell(grid, 0, NewBinaryWord(true)))

	if Overlap(a.GridTreeSubset, b.GridTreeSubset) == Disjoint(a.GridTreeSubset, b.GridTreeSubset) {
		t.Error("Overlap and Disjoint must disagree for any pair")
	}
	if !Disjoint(a.GridTreeSubset, b.GridTreeSubset) {
		t.Error("cells on opposite halves of the root split should be disjoint")
	}
}

func TestMonotoneRefinement(t *testing.T) {
	grid := unitGrid2D()
	target := NewBox(Interval{Lower: 0.1, Upper: 0.9}, Interval{Lower: 0.1, Upper: 0.9})
	set := boxSet{box: target}

	coarse := NewGridTreeSet(grid)
	_ = AdjoinOuterApproximation(coarse, set, 1)
	fine := NewGridTreeSet(grid)
	_ = AdjoinOuterApproximation(fine, set, 4)

	if fine.Measure() > coarse.Measure()+1e-9 {
		t.Errorf("finer outer approximation measure %v exceeds coarser %v", fine.Measure(), coarse.Measure())
	}
}

func TestCellIteratorInvalidatedByMutation(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false)))
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord(true)))

	it := s.Iterator()
	if !it.Next() {
		t.Fatal("expected at least one enabled cell")
	}
	s.Adjoin(NewGridCell(grid, 1, NewBinaryWord()))
	if it.Next() {
		t.Error("iterator should be invalidated after a structural mutation")
	}
}

func TestCellIteratorVisitsAllEnabledLeaves(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false)))
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord(true)))

	it := s.Iterator()
	count := 0
	for it.Next() {
		count++
	}
	if count != len(s.Cells()) {
		t.Errorf("iterator visited %d cells, want %d", count, len(s.Cells()))
	}
}
