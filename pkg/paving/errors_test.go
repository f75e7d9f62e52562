package paving

import (
	"errors"
	"testing"
)

func TestAdjoinOverApproximationEmptyInterior(t *testing.T) {
	grid := unitGrid2D()
	s := NewGridTreeSet(grid)
	degenerate := NewBox(Interval{Lower: 0.3, Upper: 0.3}, Interval{Lower: 0, Upper: 1})

	err := AdjoinOverApproximation(s, degenerate, 2)
	if !errors.Is(err, ErrEmptyInterior) {
		t.Fatalf("AdjoinOverApproximation(degenerate box) error = %v, want ErrEmptyInterior", err)
	}
}

func TestAdjoinOuterApproximationDimensionMismatch(t *testing.T) {
	grid := UnitGrid(2)
	s := NewGridTreeSet(grid)
	wrongDimBox := boxSet{box: NewBox(Interval{Lower: 0, Upper: 1})}

	err := AdjoinOuterApproximation(s, wrongDimBox, 1)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("AdjoinOuterApproximation(mismatched dimension) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestJoinGridMismatch(t *testing.T) {
	a := NewGridTreeSet(UnitGrid(2))
	b := NewGridTreeSet(NewGrid([]float64{0, 0}, []float64{2, 2}))

	_, err := Join(a.GridTreeSubset, b.GridTreeSubset)
	if !errors.Is(err, ErrGridMismatch) {
		t.Fatalf("Join(mismatched grids) error = %v, want ErrGridMismatch", err)
	}
}

func TestImportMalformedStream(t *testing.T) {
	_, err := Import(errorReader{})
	if err == nil {
		t.Fatal("Import of a broken stream should fail")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Import error = %v, want wrapping ErrIO", err)
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, errors.New("boom") }
