package rav1e

import "testing"

func TestMotionVectorAdd(t *testing.T) {
	a := MotionVector{Row: 3, Col: -5}
	b := MotionVector{Row: -3, Col: 5}

	if got := a.Add(b); !got.IsZero() {
		t.Errorf("a.Add(-a) = %v, want zero", got)
	}
	// Commutative.
	c := MotionVector{Row: 17, Col: 9}
	if a.Add(c) != c.Add(a) {
		t.Error("Add is not commutative")
	}
	// Associative.
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Error("Add is not associative")
	}
}

func TestMotionVectorDivTruncates(t *testing.T) {
	mv := MotionVector{Row: -7, Col: 7}
	got := mv.Div(2)
	if got.Row != -3 || got.Col != 3 {
		t.Errorf("Div(2) = %v, want {-3 3} (truncation toward zero)", got)
	}
}

func TestQuantizeToFullpel(t *testing.T) {
	vectors := []MotionVector{
		{0, 0}, {1, -1}, {7, -7}, {8, -8}, {9, 15}, {-9, -15},
		{1000, -1000}, {32767, -32768},
	}
	for _, mv := range vectors {
		q := mv.QuantizeToFullpel()
		if q.Row%8 != 0 || q.Col%8 != 0 {
			t.Errorf("QuantizeToFullpel(%v) = %v, not full-pel", mv, q)
		}
		// Truncation never moves away from zero or past a full pixel.
		if abs16(mv.Row-q.Row) >= 8 || abs16(mv.Col-q.Col) >= 8 {
			t.Errorf("QuantizeToFullpel(%v) = %v, moved more than 7/8 pel", mv, q)
		}
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func TestRefTypeToIndex(t *testing.T) {
	for i, r := range AllInterRefs {
		if got := r.ToIndex(); got != i {
			t.Errorf("%v.ToIndex() = %d, want %d", r, got, i)
		}
	}
}

func TestRefTypeToIndexPanics(t *testing.T) {
	for _, r := range []RefType{IntraFrame, NoneFrame} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v.ToIndex() did not panic", r)
				}
			}()
			r.ToIndex()
		}()
	}
}

func TestRefTypeDirection(t *testing.T) {
	for _, r := range []RefType{LastFrame, Last2Frame, Last3Frame, GoldenFrame} {
		if !r.IsFwdRef() || r.IsBwdRef() {
			t.Errorf("%v should be a forward reference", r)
		}
	}
	for _, r := range []RefType{BwdrefFrame, Altref2Frame, AltrefFrame} {
		if r.IsFwdRef() || !r.IsBwdRef() {
			t.Errorf("%v should be a backward reference", r)
		}
	}
}
