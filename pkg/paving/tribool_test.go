package paving

import "testing"

func TestTriboolAndOr(t *testing.T) {
	if And(DefinitelyTrue, Possibly) != Possibly {
		t.Error("And(true, possibly) should be possibly")
	}
	if And(DefinitelyFalse, Possibly) != DefinitelyFalse {
		t.Error("And(false, possibly) should short-circuit to false")
	}
	if Or(DefinitelyTrue, Possibly) != DefinitelyTrue {
		t.Error("Or(true, possibly) should short-circuit to true")
	}
	if Or(DefinitelyFalse, Possibly) != Possibly {
		t.Error("Or(false, possibly) should be possibly")
	}
}

func TestTriboolNot(t *testing.T) {
	if Not(DefinitelyTrue) != DefinitelyFalse || Not(DefinitelyFalse) != DefinitelyTrue || Not(Possibly) != Possibly {
		t.Error("Not() must invert true/false and leave possibly alone")
	}
}
