package canvas2d

import (
	"math"
	"testing"
)

func TestAllFinite(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   bool
	}{
		{"empty", nil, true},
		{"finite", []float64{0, -1, 1e300}, true},
		{"nan", []float64{1, math.NaN()}, false},
		{"+inf", []float64{math.Inf(1)}, false},
		{"-inf", []float64{2, 3, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllFinite(tt.values...); got != tt.want {
				t.Errorf("AllFinite(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestDegreesRadians(t *testing.T) {
	if got := Degrees(math.Pi); got != 180 {
		t.Errorf("Degrees(π) = %v, want 180", got)
	}
	if got := Radians(90); !ApproxEqual(got, math.Pi/2) {
		t.Errorf("Radians(90) = %v, want π/2", got)
	}
	if got := Degrees(Radians(37.5)); !ApproxEqual(got, 37.5) {
		t.Errorf("round trip = %v, want 37.5", got)
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{360, 360, true},
		{360, Degrees(2 * math.Pi), true},
		{360, 359.999, false},
		{0, 1e-13, true},
		{0, 1e-6, false},
		{1e12, 1e12 + 1, true},
	}
	for _, tt := range tests {
		if got := ApproxEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); !ApproxEqual(got, tt.want) {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRectBounds(t *testing.T) {
	r := XYWH(10, 20, -5, 10)
	if r.Min != Pt(5, 20) || r.Max != Pt(10, 30) {
		t.Fatalf("XYWH normalized = %v, want (5,20)-(10,30)", r)
	}
	if r.Width() != 5 || r.Height() != 10 {
		t.Errorf("size = %vx%v, want 5x10", r.Width(), r.Height())
	}
	if got := r.UnionPoint(Pt(0, 40)); got.Min != Pt(0, 20) || got.Max != Pt(10, 40) {
		t.Errorf("UnionPoint = %v", got)
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(7, 25), true},
		{Pt(5, 20), true},
		{Pt(10, 30), true},
		{Pt(4.9, 25), false},
		{Pt(7, 30.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
