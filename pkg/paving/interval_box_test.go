package paving

import "testing"

func TestIntervalSplit(t *testing.T) {
	iv := Interval{Lower: 0, Upper: 1}
	lower, upper := iv.SplitLower(), iv.SplitUpper()
	if lower.Lower != 0 || lower.Upper != 0.5 {
		t.Errorf("SplitLower() = %v, want [0, 0.5]", lower)
	}
	if upper.Lower != 0.5 || upper.Upper != 1 {
		t.Errorf("SplitUpper() = %v, want [0.5, 1]", upper)
	}
}

func TestIntervalOverlapsSubset(t *testing.T) {
	a := Interval{Lower: 0, Upper: 1}
	b := Interval{Lower: 0.5, Upper: 1.5}
	c := Interval{Lower: 2, Upper: 3}
	if !a.Overlaps(b) {
		t.Error("overlapping intervals reported disjoint")
	}
	if a.Overlaps(c) {
		t.Error("disjoint intervals reported overlapping")
	}
	if !(Interval{Lower: 0.2, Upper: 0.4}).Subset(a) {
		t.Error("[0.2,0.4] should be a subset of [0,1]")
	}
}

func TestBoxMeasure(t *testing.T) {
	box := NewBox(Interval{Lower: 0, Upper: 2}, Interval{Lower: 0, Upper: 0.5})
	if got := box.Measure(); got != 1.0 {
		t.Errorf("Measure() = %v, want 1.0", got)
	}
}

func TestBoxCoversSubsetAreDuals(t *testing.T) {
	outer := NewBox(Interval{Lower: 0, Upper: 1}, Interval{Lower: 0, Upper: 1})
	inner := NewBox(Interval{Lower: 0.2, Upper: 0.3}, Interval{Lower: 0.2, Upper: 0.3})
	if !outer.Covers(inner) {
		t.Error("outer.Covers(inner) = false, want true")
	}
	if !inner.Subset(outer) {
		t.Error("inner.Subset(outer) = false, want true")
	}
}

func TestBoxSplitAxis(t *testing.T) {
	box := NewBox(Interval{Lower: 0, Upper: 1}, Interval{Lower: 0, Upper: 1})
	lower, upper := box.SplitAxis(0)
	if lower.Axis(0).Upper != 0.5 || upper.Axis(0).Lower != 0.5 {
		t.Errorf("SplitAxis(0) = (%v, %v), want split at 0.5 on axis 0", lower, upper)
	}
	if lower.Axis(1) != box.Axis(1) {
		t.Error("SplitAxis must leave the untouched axis unchanged")
	}
}
