package xform

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
}

func TestPointLength(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"origin", Pt(0, 0), 0},
		{"unit x", Pt(1, 0), 1},
		{"3-4-5", Pt(3, 4), 5},
		{"negative", Pt(-3, -4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Length(); got != tt.want {
				t.Errorf("%v.Length() = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}
