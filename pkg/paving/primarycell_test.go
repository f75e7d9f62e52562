package paving

import "testing"

func TestPrimaryCellLatticeBoxAlternation(t *testing.T) {
	tests := []struct {
		height       int
		wantLo, wantHi float64
	}{
		{0, 0, 1},
		{1, -1, 1},
		{2, -1, 3},
		{3, -5, 3},
		{4, -5, 11},
	}
	for _, tt := range tests {
		box := PrimaryCellLatticeBox(tt.height, 1)
		ax := box.Axis(0)
		if ax.Lower != tt.wantLo || ax.Upper != tt.wantHi {
			t.Errorf("PrimaryCellLatticeBox(%d) = [%v,%v], want [%v,%v]", tt.height, ax.Lower, ax.Upper, tt.wantLo, tt.wantHi)
		}
	}
}

func TestSmallestEnclosingPrimaryCellHeight(t *testing.T) {
	box := NewBox(Interval{Lower: -3, Upper: 1.5})
	h := SmallestEnclosingPrimaryCellHeight(box)
	if !box.Subset(PrimaryCellLatticeBox(h, 1)) {
		t.Fatalf("height %d does not enclose the box", h)
	}
	if h > 0 && box.Subset(PrimaryCellLatticeBox(h-1, 1)) {
		t.Errorf("height %d is not the smallest enclosing height", h)
	}
}

func TestPrimaryCellPathLength(t *testing.T) {
	word := PrimaryCellPath(2, 3, 0)
	if len(word) != 2*3 {
		t.Fatalf("PrimaryCellPath length = %d, want %d", len(word), 6)
	}
}
