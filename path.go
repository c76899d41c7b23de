package canvas2d

import "math"

// PathElement represents a single segment in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-path at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current sub-path back to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of path segments. It is the value handed to
// backends: all coordinates are in device space, except that an ArcTo
// carries its own frame mapping the ellipse into that space.
//
// Path enforces the structural rules every segment store needs: the first
// segment is a MoveTo, and a drawing segment appended after Close first
// reopens the sub-path at its start point. Canvas-specific behavior lives
// in [Path2D].
//
// Path is not safe for concurrent use.
type Path struct {
	elements []PathElement
	start    Point // start of the current sub-path
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y). On an empty path the line starts at
// (x, y) itself.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.ensureSubpath(pt)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve. On an empty path the curve
// starts at the control point.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.ensureSubpath(ctrl)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve. On an empty path the curve starts
// at the first control point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	pt := Pt(x, y)
	p.ensureSubpath(ctrl1)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Arc appends an elliptical arc segment. An empty path first moves to the
// arc start; otherwise the current point is joined to the arc start by a
// line when the two differ.
func (p *Path) Arc(a ArcTo) {
	s := a.StartPoint()
	if len(p.elements) == 0 {
		p.MoveTo(s.X, s.Y)
	} else {
		p.ensureSubpath(s)
		if !p.current.ApproxEqual(s) {
			p.elements = append(p.elements, LineTo{Point: s})
		}
	}
	p.elements = append(p.elements, a)
	p.current = a.EndPoint()
}

// Close closes the current sub-path.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// ensureSubpath inserts the MoveTo a drawing segment needs: to first on an
// empty path, or back to the sub-path start after a Close.
func (p *Path) ensureSubpath(first Point) {
	switch {
	case len(p.elements) == 0:
		p.MoveTo(first.X, first.Y)
	case p.lastIsClose():
		p.MoveTo(p.start.X, p.start.Y)
	}
}

func (p *Path) lastIsClose() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Bounds returns the bounding box of every point and control point in the
// path. Arc segments contribute the control points of their cubic
// approximation. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r = r.UnionPoint(pt)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		case ArcTo:
			add(e.StartPoint())
			for _, c := range e.Cubics() {
				add(c.Control1)
				add(c.Control2)
				add(c.Point)
			}
		}
	}
	return r
}

// Transform returns a copy of the path with every point mapped by m.
// Arc segments keep their geometry and compose m into their frame.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case ArcTo:
			e.Frame = m.Multiply(e.Frame)
			result.elements = append(result.elements, e)
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// Append adds every segment of other to p, preserving sub-path boundaries.
func (p *Path) Append(other *Path) {
	if other == nil || len(other.elements) == 0 {
		return
	}
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}

// Subpath is a flattened sub-path: a polyline and whether it was closed.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines. Curves are subdivided until
// the chord deviation is below tolerance (in path units).
func (p *Path) Flatten(tolerance float64) []Subpath {
	if tolerance <= 0 || !AllFinite(tolerance) {
		tolerance = 0.25
	}
	var out []Subpath
	var cur *Subpath
	last := Point{}
	begin := func(pt Point) {
		out = append(out, Subpath{Points: []Point{pt}})
		cur = &out[len(out)-1]
		last = pt
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
		case LineTo:
			cur.Points = append(cur.Points, e.Point)
			last = e.Point
		case QuadTo:
			cur.Points = flattenQuad(cur.Points, last, e.Control, e.Point, tolerance)
			last = e.Point
		case CubicTo:
			cur.Points = flattenCubic(cur.Points, last, e.Control1, e.Control2, e.Point, tolerance)
			last = e.Point
		case ArcTo:
			for _, c := range e.Cubics() {
				cur.Points = flattenCubic(cur.Points, last, c.Control1, c.Control2, c.Point, tolerance)
				last = c.Point
			}
		case Close:
			cur.Closed = true
			last = cur.Points[0]
		}
	}
	return out
}

// segmentCount estimates how many line segments approximate a curve whose
// control polygon deviates from its chord by dev.
func segmentCount(dev, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(dev / tolerance)))
	return max(1, min(n, 256))
}

func flattenQuad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Length() / 4
	n := segmentCount(dev, tolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, Point{
			X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
			Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
		})
	}
	return dst
}

func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := segmentCount(0.75*math.Max(d1, d2), tolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		dst = append(dst, Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}

// Contains reports whether (x, y) lies inside the path under rule. Every
// sub-path is treated as implicitly closed, so an open arc is classified
// by its chord.
func (p *Path) Contains(x, y float64, rule FillRule) bool {
	if !AllFinite(x, y) || !p.Bounds().Contains(Pt(x, y)) {
		return false
	}
	winding := 0
	for _, sp := range p.Flatten(0.1) {
		pts := sp.Points
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := range n {
			a := pts[i]
			b := pts[(i+1)%n]
			if a.Y <= y {
				if b.Y > y && (b.X-a.X)*(y-a.Y)-(x-a.X)*(b.Y-a.Y) > 0 {
					winding++
				}
			} else if b.Y <= y && (b.X-a.X)*(y-a.Y)-(x-a.X)*(b.Y-a.Y) < 0 {
				winding--
			}
		}
	}
	if rule == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}
