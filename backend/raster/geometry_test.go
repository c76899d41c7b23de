package raster

import (
	"math"
	"testing"

	"github.com/gogpu/canvas2d"
)

func TestEvenOddCoverage(t *testing.T) {
	square := []canvas2d.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}
	mask := evenOddCoverage([][]canvas2d.Point{square}, 4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 255
			}
			if got := mask.AlphaAt(x, y).A; got != want {
				t.Errorf("coverage(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEvenOddCoverageHalfPixel(t *testing.T) {
	half := []canvas2d.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 1}}
	mask := evenOddCoverage([][]canvas2d.Point{half}, 2, 1)
	if got := mask.AlphaAt(0, 0).A; got != 127 {
		t.Errorf("half pixel coverage = %d, want 127", got)
	}
}

func TestStrokePolygons(t *testing.T) {
	line := []canvas2d.Subpath{{Points: []canvas2d.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	tests := []struct {
		name  string
		cap   canvas2d.LineCap
		polys int
		area  float64
	}{
		{"butt", canvas2d.LineCapButt, 1, 20},
		{"square", canvas2d.LineCapSquare, 3, 24},
		{"round", canvas2d.LineCapRound, 3, 20 + 2*math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := strokePolygons(line, strokeStyle{halfWidth: 1, cap: tt.cap, miterLimit: 10})
			if len(polys) != tt.polys {
				t.Fatalf("polygons = %d, want %d", len(polys), tt.polys)
			}
			var area float64
			for _, p := range polys {
				a := signedArea(p)
				if a <= 0 {
					t.Errorf("polygon %v is not positively oriented", p)
				}
				area += a
			}
			if math.Abs(area-tt.area) > 0.6 {
				t.Errorf("total area = %v, want about %v", area, tt.area)
			}
		})
	}
}

func TestStrokeSkipsLoneMoveTo(t *testing.T) {
	sp := []canvas2d.Subpath{{Points: []canvas2d.Point{{X: 5, Y: 5}}}}
	if polys := strokePolygons(sp, strokeStyle{halfWidth: 2, cap: canvas2d.LineCapRound}); len(polys) != 0 {
		t.Errorf("lone moveTo produced %d polygons", len(polys))
	}
	zero := []canvas2d.Subpath{{Points: []canvas2d.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}}}
	if polys := strokePolygons(zero, strokeStyle{halfWidth: 2, cap: canvas2d.LineCapSquare}); len(polys) != 1 {
		t.Errorf("zero-length square cap produced %d polygons, want 1", len(polys))
	}
	if polys := strokePolygons(zero, strokeStyle{halfWidth: 2, cap: canvas2d.LineCapButt}); len(polys) != 0 {
		t.Errorf("zero-length butt cap produced %d polygons, want 0", len(polys))
	}
}

func TestMiterLimitFallsBackToBevel(t *testing.T) {
	// A sharp V whose miter ratio is far above the limit.
	v := []canvas2d.Subpath{{Points: []canvas2d.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 1}}}}
	polys := strokePolygons(v, strokeStyle{halfWidth: 1, join: canvas2d.LineJoinMiter, miterLimit: 2})
	// Two segments plus one bevel triangle.
	if len(polys) != 3 {
		t.Fatalf("polygons = %d, want 3", len(polys))
	}
	if n := len(polys[2]); n != 3 {
		t.Errorf("join polygon has %d points, want a 3 point bevel", n)
	}
}

func TestBlendModes(t *testing.T) {
	for op := range blendModes {
		if op != canvas2d.CompositeClear {
			if _, ok := canvas2d.ParseCompositeOperation(string(op)); !ok {
				t.Errorf("blend mode %q is not a settable composite operation", op)
			}
		}
	}
	fa, fb := blendModes[canvas2d.CompositeSourceOver](1, 1)
	if fa != 1 || fb != 0 {
		t.Errorf("source-over factors = %v, %v", fa, fb)
	}
	fa, fb = blendModes[canvas2d.CompositeXor](1, 1)
	if fa != 0 || fb != 0 {
		t.Errorf("xor factors for opaque pixels = %v, %v", fa, fb)
	}
}
