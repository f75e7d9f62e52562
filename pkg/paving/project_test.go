package paving

import "testing"

func TestProjectDownDimensionAndNonEmpty(t *testing.T) {
	grid := UnitGrid(3)
	s := NewGridTreeSet(grid)
	s.Adjoin(NewGridCell(grid, 0, NewBinaryWord(false, true, false)))

	proj := ProjectDown(s.GridTreeSubset, []int{0, 2})
	if proj.Grid().Dimension() != 2 {
		t.Fatalf("ProjectDown grid dimension = %d, want 2", proj.Grid().Dimension())
	}
	if proj.Empty() {
		t.Error("ProjectDown of a non-empty set must not be empty")
	}
}
