package raster

import (
	"math"

	"github.com/gogpu/canvas2d"
)

// strokeStyle is the device-space geometry of a stroke.
type strokeStyle struct {
	halfWidth  float64
	cap        canvas2d.LineCap
	join       canvas2d.LineJoin
	miterLimit float64
}

func strokeStyleOf(paint *canvas2d.Paint) strokeStyle {
	return strokeStyle{
		halfWidth:  paint.DeviceLineWidth() / 2,
		cap:        paint.LineCap,
		join:       paint.LineJoin,
		miterLimit: paint.MiterLimit,
	}
}

// strokePolygons expands polylines into a set of positively oriented
// polygons whose nonzero union is the stroke outline: one quad per
// segment plus join and cap pieces.
func strokePolygons(subpaths []canvas2d.Subpath, st strokeStyle) [][]canvas2d.Point {
	if st.halfWidth <= 0 {
		return nil
	}
	var s stroker
	s.style = st
	for _, sp := range subpaths {
		// A lone moveTo strokes nothing; a zero-length segment does.
		if len(sp.Points) < 2 {
			continue
		}
		s.subpath(dedupe(sp.Points), sp.Closed)
	}
	return s.polys
}

type stroker struct {
	style strokeStyle
	polys [][]canvas2d.Point
}

func (s *stroker) add(poly ...canvas2d.Point) {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	s.polys = append(s.polys, poly)
}

func (s *stroker) subpath(pts []canvas2d.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		s.dot(pts[0])
		return
	}
	if closed && pts[0].ApproxEqual(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	segs := n - 1
	if closed && n > 2 {
		segs = n
	}
	for i := 0; i < segs; i++ {
		s.segment(pts[i], pts[(i+1)%n])
	}
	if closed && n > 2 {
		for i := 0; i < n; i++ {
			s.join(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		s.join(pts[i-1], pts[i], pts[i+1])
	}
	s.cap(pts[0], pts[0].Sub(pts[1]).Normalize())
	s.cap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize())
}

// segment adds the rectangle covering a to c.
func (s *stroker) segment(a, c canvas2d.Point) {
	n := normal(c.Sub(a)).Mul(s.style.halfWidth)
	s.add(a.Add(n), c.Add(n), c.Sub(n), a.Sub(n))
}

// join fills the gap on the outer side of the corner at v.
func (s *stroker) join(prev, v, next canvas2d.Point) {
	d1 := v.Sub(prev).Normalize()
	d2 := next.Sub(v).Normalize()
	cross := d1.Cross(d2)
	if math.Abs(cross) < 1e-12 && d1.Dot(d2) > 0 {
		return
	}
	hw := s.style.halfWidth
	if s.style.join == canvas2d.LineJoinRound {
		s.add(circle(v, hw)...)
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(d1).Mul(hw * side)
	n2 := normal(d2).Mul(hw * side)

	if s.style.join == canvas2d.LineJoinMiter {
		cosHalf := math.Sqrt((1 + d1.Dot(d2)) / 2)
		if cosHalf > 1e-9 && 1/cosHalf <= s.style.miterLimit {
			bisector := n1.Add(n2).Normalize()
			tip := v.Add(bisector.Mul(hw / cosHalf))
			s.add(v, v.Add(n1), tip, v.Add(n2))
			return
		}
	}
	s.add(v, v.Add(n1), v.Add(n2))
}

// cap adds the end cap at p; dir points away from the line.
func (s *stroker) cap(p, dir canvas2d.Point) {
	hw := s.style.halfWidth
	switch s.style.cap {
	case canvas2d.LineCapRound:
		s.add(circle(p, hw)...)
	case canvas2d.LineCapSquare:
		n := normal(dir).Mul(hw)
		ext := dir.Mul(hw)
		s.add(p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
	}
}

// dot draws a zero-length sub-path, which only round and square caps
// make visible.
func (s *stroker) dot(p canvas2d.Point) {
	hw := s.style.halfWidth
	switch s.style.cap {
	case canvas2d.LineCapRound:
		s.add(circle(p, hw)...)
	case canvas2d.LineCapSquare:
		s.add(
			canvas2d.Pt(p.X-hw, p.Y-hw), canvas2d.Pt(p.X+hw, p.Y-hw),
			canvas2d.Pt(p.X+hw, p.Y+hw), canvas2d.Pt(p.X-hw, p.Y+hw),
		)
	}
}

func normal(d canvas2d.Point) canvas2d.Point {
	d = d.Normalize()
	return canvas2d.Pt(-d.Y, d.X)
}

// circle approximates a circle with a polygon fine enough for radius r.
func circle(c canvas2d.Point, r float64) []canvas2d.Point {
	n := max(8, min(int(math.Ceil(math.Pi*math.Sqrt(r*8))), 128))
	pts := make([]canvas2d.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = canvas2d.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

func signedArea(poly []canvas2d.Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.Cross(q)
	}
	return a / 2
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []canvas2d.Point) []canvas2d.Point {
	out := make([]canvas2d.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].ApproxEqual(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
