package paving

import "testing"

func TestOuterRestrictKeepsAmbiguousCells(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))
	s.MinceToTreeDepth(2)

	region := boxSet{box: NewBox(Interval{Lower: 0.2, Upper: 0.3}, Interval{Lower: 0.2, Upper: 0.3})}
	before := s.Measure()
	s.OuterRestrict(region)
	if s.Measure() >= before {
		t.Error("OuterRestrict should shrink the set once some leaves are definitely outside")
	}
	if s.Measure() <= 0 {
		t.Error("OuterRestrict must keep at least the leaves overlapping the region")
	}
}

func TestInnerRestrictDropsAmbiguousCells(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))
	s.MinceToTreeDepth(2)

	region := boxSet{box: NewBox(Interval{Lower: 0.2, Upper: 0.3}, Interval{Lower: 0.2, Upper: 0.3})}
	s.InnerRestrict(region)
	for _, cell := range s.Cells() {
		if !Definitely(region.Covers(cell.Box())) {
			t.Errorf("InnerRestrict kept a leaf %v not definitely inside the region", cell.Box().Intervals())
		}
	}
}

func TestOuterRemoveDropsDefinitelyInsideCells(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))
	s.MinceToTreeDepth(2)

	region := boxSet{box: NewBox(Interval{Lower: -0.1, Upper: 0.6}, Interval{Lower: -0.1, Upper: 0.6})}
	s.OuterRemove(region)
	for _, cell := range s.Cells() {
		if Definitely(region.Covers(cell.Box())) {
			t.Errorf("OuterRemove kept a leaf %v definitely inside the removed region", cell.Box().Intervals())
		}
	}
	if s.Empty() {
		t.Fatal("OuterRemove should not have removed the quarters outside the region")
	}
}

func TestSubdivide(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord()))

	s.Subdivide(0.3)
	for _, cell := range s.Cells() {
		box := cell.Box()
		for i := 0; i < grid.Dimension(); i++ {
			if box.Axis(i).Width() > 0.3+1e-9 {
				t.Errorf("Subdivide(0.3) left a cell with width %v on axis %d", box.Axis(i).Width(), i)
			}
		}
	}
}

func TestRestrictToHeight(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	s.UpToPrimaryCell(2)
	s.Adjoin(NewGridCell(grid, 2, NewBinaryWord()))

	s.RestrictToHeight(0)
	if s.Cell().Height() != 0 {
		t.Fatalf("RestrictToHeight(0) left height %d, want 0", s.Cell().Height())
	}
}
