package paving

import "testing"

func TestGridCoordinateRoundTrip(t *testing.T) {
	g := NewGrid([]float64{1, -2}, []float64{0.5, 2})
	x := g.Coordinate(0, 4) // 1 + 4*0.5 = 3
	if x != 3 {
		t.Errorf("Coordinate(0, 4) = %v, want 3", x)
	}
	if got := g.SubdivisionIndex(0, 3); got != 4 {
		t.Errorf("SubdivisionIndex(0, 3) = %v, want 4", got)
	}
}

func TestGridEqual(t *testing.T) {
	a := NewGrid([]float64{0, 0}, []float64{1, 1})
	b := NewGrid([]float64{0, 0}, []float64{1, 1})
	c := NewGrid([]float64{0, 0}, []float64{2, 1})
	if !a.Equal(b) {
		t.Error("grids with equal origin/lengths should compare equal")
	}
	if a.Equal(c) {
		t.Error("grids with different lengths should not compare equal")
	}
}

func TestGridToLatticeBoxOutwardRounding(t *testing.T) {
	g := UnitGrid(1)
	box := NewBox(Interval{Lower: 0.1, Upper: 0.9})
	lattice := g.ToLatticeBox(box)
	if lattice.Axis(0).Lower > 0.1 || lattice.Axis(0).Upper < 0.9 {
		t.Error("ToLatticeBox must round outward, never shrinking the box")
	}
}

func TestProjectDownGrid(t *testing.T) {
	g := NewGrid([]float64{1, 2, 3}, []float64{4, 5, 6})
	proj := ProjectDownGrid(g, []int{2, 0})
	if proj.Dimension() != 2 {
		t.Fatalf("ProjectDownGrid dimension = %d, want 2", proj.Dimension())
	}
	if proj.Origin()[0] != 3 || proj.Origin()[1] != 1 {
		t.Errorf("ProjectDownGrid origin = %v, want [3 1]", proj.Origin())
	}
}
