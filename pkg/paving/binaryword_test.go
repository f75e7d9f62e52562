package paving

import "testing"

func TestBinaryWordPushPop(t *testing.T) {
	w := NewBinaryWord(false, true)
	w2 := w.Push(true)
	if len(w) != 2 {
		t.Fatalf("Push must not mutate the original word, got len %d", len(w))
	}
	if !w2.Equal(NewBinaryWord(false, true, true)) {
		t.Errorf("Push() = %v, want [false true true]", w2)
	}
	popped, bit := w2.Pop()
	if !bit || !popped.Equal(w) {
		t.Errorf("Pop() = (%v, %v), want (%v, true)", popped, bit, w)
	}
}

func TestBinaryWordIsPrefixOf(t *testing.T) {
	tests := []struct {
		name  string
		a, b  BinaryWord
		want  bool
	}{
		{"empty prefix of anything", NewBinaryWord(), NewBinaryWord(true, false), true},
		{"equal words", NewBinaryWord(true, false), NewBinaryWord(true, false), true},
		{"true prefix", NewBinaryWord(true), NewBinaryWord(true, false, true), true},
		{"mismatch", NewBinaryWord(false), NewBinaryWord(true, false), false},
		{"longer than other", NewBinaryWord(true, false, true), NewBinaryWord(true), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsPrefixOf(tt.b); got != tt.want {
				t.Errorf("IsPrefixOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryWordCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b BinaryWord
		want int
	}{
		{"equal", NewBinaryWord(true, false), NewBinaryWord(true, false), 0},
		{"false before true", NewBinaryWord(false), NewBinaryWord(true), -1},
		{"true after false", NewBinaryWord(true), NewBinaryWord(false), 1},
		{"shorter is less when prefix", NewBinaryWord(true), NewBinaryWord(true, false), -1},
		{"longer is greater when prefix", NewBinaryWord(true, false), NewBinaryWord(true), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBinaryWordConcat(t *testing.T) {
	a := NewBinaryWord(true, false)
	b := NewBinaryWord(false, true)
	got := a.Concat(b)
	want := NewBinaryWord(true, false, false, true)
	if !got.Equal(want) {
		t.Errorf("Concat() = %v, want %v", got, want)
	}
}
