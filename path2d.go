package canvas2d

import (
	"fmt"
	"math"
)

// Path2D builds a [Path] with Canvas 2D semantics.
//
// Non-finite arguments leave the path unchanged and raise no error. A
// negative radius given to ArcTo, Arc or Ellipse returns an error wrapping
// [ErrInvalidArgument] and leaves the path unchanged.
//
// Path2D is not safe for concurrent use.
type Path2D struct {
	path *Path
}

// NewPath2D creates an empty path.
func NewPath2D() *Path2D {
	return &Path2D{path: NewPath()}
}

// NewPath2DFrom creates an independent copy of other. A nil other yields
// an empty path.
func NewPath2DFrom(other *Path2D) *Path2D {
	if other == nil {
		return NewPath2D()
	}
	return other.Clone()
}

// Clone returns an independent deep copy.
func (p *Path2D) Clone() *Path2D {
	return &Path2D{path: p.path.Clone()}
}

// Path returns the underlying segment store. Callers must not modify it.
func (p *Path2D) Path() *Path {
	return p.path
}

// IsEmpty reports whether the path has no segments.
func (p *Path2D) IsEmpty() bool {
	return p.path.IsEmpty()
}

// CurrentPoint returns the current point and whether one exists.
func (p *Path2D) CurrentPoint() (Point, bool) {
	return p.path.CurrentPoint(), p.path.HasCurrentPoint()
}

// Bounds returns the path's bounding box.
func (p *Path2D) Bounds() Rect {
	return p.path.Bounds()
}

// Contains reports whether (x, y) is inside the path under rule.
func (p *Path2D) Contains(x, y float64, rule FillRule) bool {
	return p.path.Contains(x, y, rule)
}

// Reset removes every segment.
func (p *Path2D) Reset() {
	p.path.Clear()
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path2D) MoveTo(x, y float64) {
	p.moveTo(Identity(), x, y)
}

// LineTo draws a line to (x, y). On an empty path it first moves to
// (x, y).
func (p *Path2D) LineTo(x, y float64) {
	p.lineTo(Identity(), x, y)
}

// QuadraticCurveTo draws a quadratic curve. On an empty path it first
// moves to the control point.
func (p *Path2D) QuadraticCurveTo(cpx, cpy, x, y float64) {
	p.quadTo(Identity(), cpx, cpy, x, y)
}

// BezierCurveTo draws a cubic curve. On an empty path it first moves to
// the first control point.
func (p *Path2D) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	p.cubicTo(Identity(), cp1x, cp1y, cp2x, cp2y, x, y)
}

// Rect appends a closed rectangle sub-path.
func (p *Path2D) Rect(x, y, w, h float64) {
	p.rect(Identity(), x, y, w, h)
}

// ArcTo appends a tangent arc of radius r between the lines from the
// current point to (x1, y1) and from (x1, y1) to (x2, y2).
func (p *Path2D) ArcTo(x1, y1, x2, y2, r float64) error {
	return p.arcTo(Identity(), x1, y1, x2, y2, r)
}

// Arc appends a circular arc. Angles are in radians.
func (p *Path2D) Arc(x, y, r, startAngle, endAngle float64, counterclockwise bool) error {
	return p.ellipse(Identity(), x, y, r, r, 0, startAngle, endAngle, counterclockwise)
}

// Ellipse appends an elliptical arc rotated by rotation around (x, y).
// Angles are in radians.
func (p *Path2D) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) error {
	return p.ellipse(Identity(), x, y, rx, ry, rotation, startAngle, endAngle, counterclockwise)
}

// ClosePath closes the current sub-path. It does nothing on an empty path
// or on a path whose bounds have zero width and zero height.
func (p *Path2D) ClosePath() {
	if p.path.IsEmpty() {
		return
	}
	b := p.path.Bounds()
	if b.Width() == 0 && b.Height() == 0 {
		return
	}
	p.path.Close()
}

// AddPath appends a copy of other mapped by m. A nil m means identity.
func (p *Path2D) AddPath(other *Path2D, m *Matrix) {
	if other == nil || other.IsEmpty() {
		return
	}
	t := Identity()
	if m != nil {
		t = *m
	}
	if !t.Finite() {
		return
	}
	p.path.Append(other.path.Transform(t))
}

// The lower-case variants below take the current transform explicitly and
// append device-space geometry. Context reuses them under its CTM.

func (p *Path2D) moveTo(m Matrix, x, y float64) {
	if !AllFinite(x, y) {
		return
	}
	pt := m.TransformPoint(Pt(x, y))
	p.path.MoveTo(pt.X, pt.Y)
}

func (p *Path2D) lineTo(m Matrix, x, y float64) {
	if !AllFinite(x, y) {
		return
	}
	pt := m.TransformPoint(Pt(x, y))
	p.path.LineTo(pt.X, pt.Y)
}

func (p *Path2D) quadTo(m Matrix, cpx, cpy, x, y float64) {
	if !AllFinite(cpx, cpy, x, y) {
		return
	}
	c := m.TransformPoint(Pt(cpx, cpy))
	pt := m.TransformPoint(Pt(x, y))
	p.path.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
}

func (p *Path2D) cubicTo(m Matrix, cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !AllFinite(cp1x, cp1y, cp2x, cp2y, x, y) {
		return
	}
	c1 := m.TransformPoint(Pt(cp1x, cp1y))
	c2 := m.TransformPoint(Pt(cp2x, cp2y))
	pt := m.TransformPoint(Pt(x, y))
	p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
}

func (p *Path2D) rect(m Matrix, x, y, w, h float64) {
	if !AllFinite(x, y, x+w, y+h) {
		return
	}
	corners := [4]Point{
		m.TransformPoint(Pt(x, y)),
		m.TransformPoint(Pt(x+w, y)),
		m.TransformPoint(Pt(x+w, y+h)),
		m.TransformPoint(Pt(x, y+h)),
	}
	for _, c := range corners {
		if !c.Finite() {
			return
		}
	}
	p.path.MoveTo(corners[0].X, corners[0].Y)
	for _, c := range corners[1:] {
		p.path.LineTo(c.X, c.Y)
	}
	p.path.Close()
}

func (p *Path2D) arcTo(m Matrix, x1, y1, x2, y2, r float64) error {
	if !AllFinite(x1, y1, x2, y2, r) {
		return nil
	}
	if r < 0 {
		return fmt.Errorf("%w: arcTo radius %g is negative", ErrInvalidArgument, r)
	}
	if p.path.IsEmpty() {
		p.moveTo(m, x1, y1)
		return nil
	}
	if !m.IsInvertible() {
		return nil
	}

	// Work in user space: the current point is stored in device space.
	p0 := m.Invert().TransformPoint(p.path.CurrentPoint())
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)
	if p0.ApproxEqual(p1) || p1.ApproxEqual(p2) || r == 0 {
		p.lineTo(m, x1, y1)
		return nil
	}

	d0 := p0.Sub(p1).Normalize()
	d2 := p2.Sub(p1).Normalize()
	if math.Abs(d0.Cross(d2)) < 1e-12 {
		p.lineTo(m, x1, y1)
		return nil
	}

	// Half the angle between the two legs at p1.
	half := math.Acos(math.Max(-1, math.Min(1, d0.Dot(d2)))) / 2
	dist := r / math.Tan(half)
	t0 := p1.Add(d0.Mul(dist))
	t1 := p1.Add(d2.Mul(dist))
	center := p1.Add(d0.Add(d2).Normalize().Mul(r / math.Sin(half)))

	start := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	end := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	sweep := math.Remainder(end-start, 2*math.Pi)

	p.lineTo(m, t0.X, t0.Y)
	p.path.Arc(ArcTo{
		Center:     center,
		Radii:      Pt(r, r),
		StartAngle: Degrees(start),
		SweepAngle: Degrees(sweep),
		Frame:      m,
	})
	return nil
}

func (p *Path2D) ellipse(m Matrix, x, y, rx, ry, rotation, startAngle, endAngle float64, ccw bool) error {
	if !AllFinite(x, y, rx, ry, rotation, startAngle, endAngle) {
		return nil
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("%w: ellipse radii (%g, %g) must not be negative", ErrInvalidArgument, rx, ry)
	}

	start, end := canonicalizeAngles(startAngle, endAngle, ccw)

	frame := m
	if rotation != 0 {
		frame = m.Multiply(RotateAbout(rotation, x, y))
	}
	arc := ArcTo{
		Center:     Pt(x, y),
		Radii:      Pt(rx, ry),
		StartAngle: Degrees(start),
		SweepAngle: Degrees(end - start),
		Frame:      frame,
	}

	// A full turn is emitted as two half sweeps so the sub-path stays open.
	if ApproxEqual(math.Abs(arc.SweepAngle), 360) {
		half := arc.SweepAngle / 2
		first, second := arc, arc
		first.SweepAngle = half
		second.StartAngle = arc.StartAngle + half
		second.SweepAngle = half
		p.path.Arc(first)
		p.path.Arc(second)
		return nil
	}
	p.path.Arc(arc)
	return nil
}

// canonicalizeAngles maps start into [0, 2π), shifts end by the same
// amount, and clamps the sweep to at most one full turn in the requested
// direction.
func canonicalizeAngles(start, end float64, ccw bool) (float64, float64) {
	const twoPi = 2 * math.Pi

	newStart := normalizeAngle(start)
	end += newStart - start
	start = newStart

	switch {
	case !ccw && end-start >= twoPi:
		end = start + twoPi
	case ccw && start-end >= twoPi:
		end = start - twoPi
	case !ccw && start > end:
		end = start + (twoPi - math.Mod(start-end, twoPi))
	case ccw && start < end:
		end = start - (twoPi - math.Mod(end-start, twoPi))
	}
	return start, end
}
