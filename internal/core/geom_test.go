package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(115, 115)

	if got := p.Add(Pt(10, 0)); got != Pt(125, 115) {
		t.Errorf("Add() = %v, expected (125,115)", got)
	}
	if got := p.Sub(Pt(0, 10)); got != Pt(115, 105) {
		t.Errorf("Sub() = %v, expected (115,105)", got)
	}
	if got := Pt(-1, 1).Mul(10); got != Pt(-10, 10) {
		t.Errorf("Mul() = %v, expected (-10,10)", got)
	}
	if p.String() != "(115,115)" {
		t.Errorf("String() = %q, expected %q", p.String(), "(115,115)")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 240, 320)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 239, 319, true},
		{"right edge (exclusive)", 240, 100, false},
		{"bottom edge (exclusive)", 100, 320, false},
		{"negative", -1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	cx, cy := r.Center()
	if cx != 120 || cy != 160 {
		t.Errorf("Center() = (%d, %d), expected (120, 160)", cx, cy)
	}
}

func TestClampAbsSign(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned a wrong value")
	}
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign() returned a wrong value")
	}
}
